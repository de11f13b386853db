// Package lib holds modules that do not fit strictly into other layers:
// background job processing (Redis/Asynq) and the e-mail client (Resend).
package lib
