// Package geminilive provides a client for the Gemini Live API.
//
// The Live API enables low-latency, bidirectional audio/video/tool-call
// sessions with Gemini models over a single WebSocket connection. The
// client owns the connection lifecycle, performs the setup handshake,
// demultiplexes server frames into typed events, and serializes outbound
// realtime-input, content and tool-response messages.
//
// # Connecting
//
//	client := geminilive.NewClient(apiKey)
//	err := client.Connect(ctx, &geminilive.LiveConfig{
//	    Model: geminilive.ModelGemini20FlashExp,
//	    GenerationConfig: &geminilive.GenerationConfig{
//	        ResponseModalities: []string{geminilive.ModalityText},
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect()
//
// The first frame sent on the socket is always the setup envelope carrying
// the configuration; the open event fires only after that send completes.
//
// # Receiving Events
//
// Register a handler per named event. Each registration returns an
// unsubscribe function:
//
//	off := client.OnContent(func(sc *geminilive.ServerContent) {
//	    for _, p := range sc.ModelTurn.Parts {
//	        fmt.Print(p.Text)
//	    }
//	})
//	defer off()
//
//	client.OnAudio(func(pcm []byte) {
//	    playback.Write(pcm)
//	})
//
// Frames are dispatched in arrival order, each to completion before the
// next, so handlers never observe interleaved frames.
//
// # Sending
//
//	client.SendText("hello")
//	client.SendRealtimeInput([]*geminilive.Blob{
//	    {MIMEType: "audio/pcm;rate=16000", Data: chunk},
//	})
//
// Sends fail with ErrNotConnected unless the client is open; a send is
// never silently dropped.
package geminilive
