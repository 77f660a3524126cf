package tui

import "github.com/matheuskafuri/wikiscroll/internal/feed"

type batchDoneMsg struct {
	result feed.Result
}

type shareDoneMsg struct {
	err error
}

type openDoneMsg struct {
	err error
}
