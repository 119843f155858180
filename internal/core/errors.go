package core

import "errors"

var ErrValidation error = errors.New("validation failed")
var ErrUnauthorized error = errors.New("unauthorized")
var ErrUserNotFound error = errors.New("user not found")
var ErrCampaignNotFound error = errors.New("campaign not found")
var ErrLedger error = errors.New("ledger operation failed")
var ErrStore error = errors.New("record store operation failed")
var ErrSignInDenied error = errors.New("sign in denied")
