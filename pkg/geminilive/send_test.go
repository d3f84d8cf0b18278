package geminilive

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient("test-key")
	if err := c.SendText("hello"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("err=%v", err)
	}
	if err := c.SendRealtimeInput(nil); !errors.Is(err, ErrNotConnected) {
		t.Errorf("err=%v", err)
	}
	if err := c.SendToolResponse(&ToolResponse{}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("err=%v", err)
	}
}

func TestSendAfterDisconnect(t *testing.T) {
	block := make(chan struct{})
	c := newTestClient(t, func(conn *websocket.Conn) {
		readSetup(t, conn)
		<-block
		conn.Close()
	})
	defer close(block)

	if err := c.Connect(context.Background(), testConfig()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	c.Disconnect()

	if err := c.SendText("hello"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("err=%v", err)
	}
}

func TestSendTextWireShape(t *testing.T) {
	frames := make(chan []byte, 2)
	block := make(chan struct{})
	c := newTestClient(t, func(conn *websocket.Conn) {
		readSetup(t, conn)
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Errorf("read: %v", err)
			return
		}
		frames <- data
		<-block
		conn.Close()
	})
	defer close(block)

	if err := c.Connect(context.Background(), testConfig()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Disconnect()

	if err := c.SendText("hello"); err != nil {
		t.Fatalf("send: %v", err)
	}

	select {
	case data := <-frames:
		var frame struct {
			ClientContent struct {
				Turns []struct {
					Role  string  `json:"role"`
					Parts []*Part `json:"parts"`
				} `json:"turns"`
				TurnComplete bool `json:"turnComplete"`
			} `json:"clientContent"`
		}
		if err := json.Unmarshal(data, &frame); err != nil {
			t.Fatalf("decode: %v", err)
		}
		cc := frame.ClientContent
		if !cc.TurnComplete {
			t.Error("turnComplete=false")
		}
		if len(cc.Turns) != 1 || cc.Turns[0].Role != RoleUser {
			t.Fatalf("turns=%+v", cc.Turns)
		}
		if parts := cc.Turns[0].Parts; len(parts) != 1 || parts[0].Text != "hello" {
			t.Errorf("parts=%+v", parts)
		}
	case <-time.After(time.Second):
		t.Fatal("server never received frame")
	}
}

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		name   string
		chunks []*Blob
		want   string
	}{
		{"none", nil, "unknown"},
		{"audio", []*Blob{{MIMEType: "audio/pcm"}}, "audio"},
		{"video", []*Blob{{MIMEType: "image/jpeg"}}, "video"},
		{"both", []*Blob{{MIMEType: "audio/pcm"}, {MIMEType: "image/jpeg"}}, "audio + video"},
		{"other", []*Blob{{MIMEType: "application/pdf"}}, "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyMedia(tc.chunks); got != tc.want {
				t.Errorf("got=%q want=%q", got, tc.want)
			}
		})
	}
}
