// Package tts converts text to speech with the text-to-speech endpoint.
//
// A Client is built from a config.Config and synthesizes one request per
// call, returning the complete audio body:
//
//	client := tts.NewClient(cfg, tts.WithLogger(log))
//	audio, err := client.Synthesize(ctx, "21m00Tcm4TlvDq8ikWAM", tts.Request{
//	    Text:         "Hello world",
//	    OutputFormat: tts.FormatMP3_44100_128,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.mp3", audio, 0o644)
//
// # Errors
//
// Local validation fails with ErrEmptyText, ErrEmptyVoiceID or
// ErrTooManyDictionaries. Everything else is an *errors.Error from
// pkg/errors carrying the HTTP status and raw body of the failed call.
package tts
