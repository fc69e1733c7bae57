package evaluator

import "errors"

var (
	ErrThresholdRange           = errors.New("threshold must be between 0 and 100")
	ErrThresholdOrder           = errors.New("critical threshold must be greater than warning threshold")
	ErrNegativeNetworkThreshold = errors.New("network threshold must not be negative")
)
