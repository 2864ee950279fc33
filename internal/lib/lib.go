// Package lib holds supporting code that is not part of the request
// path: background jobs (asynq on Redis) and transactional email (Resend).
package lib
