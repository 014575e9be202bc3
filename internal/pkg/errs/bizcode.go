package errs

const (
	BizCodeInvalidParams = 1001

	BizCodeReleaseUnreachable = 7001
	BizCodeReleaseMalformed   = 7002
	BizCodeVersionUnparsable  = 7003

	BizCodeTargetNotFound      = 8001
	BizCodeTargetAlreadyExists = 8002
	BizCodeSweepInProgress     = 8003
)
