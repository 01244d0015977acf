package chart

import "errors"

var errEmptyModel = errors.New("report model has no tiers")
