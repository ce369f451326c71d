package telegram

import "errors"

var errMissingChat = errors.New("telegram: update has no chat")
