// Package elevenlabs is a client for the ElevenLabs REST API.
//
// The API is split across three clients that share one config.Config:
//
//   - tts: text-to-speech synthesis
//   - voices: voice metadata, cloning, editing, deletion and settings
//   - user: account profile and subscription
//
// Client bundles all three:
//
//	cfg, err := config.LoadFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := elevenlabs.New(cfg, elevenlabs.WithLogger(logger.New(logger.Options{})))
//
//	sub, err := client.User.GetSubscriptionInfo(ctx)
//
// Every failure that reaches the API boundary is an *errors.Error from
// pkg/errors carrying the operation, the HTTP status and the raw body.
package elevenlabs
