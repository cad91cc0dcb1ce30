// Package timezone keeps the application timezone used for token timestamps and logs.
//
// Call Init once at startup with the APP_TIMEZONE value:
//
//	timezone.Init(cfg.App.Timezone)
//	now := timezone.Now()
//
// Before Init every helper works in UTC. Use IANA names such as "UTC",
// "Asia/Jakarta" or "Europe/London".
package timezone
