// Package webrtc accepts pen reports over a WebRTC data channel.
package webrtc

import (
	"fmt"
	"log"
	"sync"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"
)

// ChannelLabel is the data channel label that carries control payloads.
const ChannelLabel = "reports"

// SendFunc writes a payload back to the remote peer.
type SendFunc func([]byte) error

// PayloadHandler processes one payload received on the data channel.
type PayloadHandler func(data []byte, send SendFunc) error

// Receiver manages the single peer connection that streams pen reports.
type Receiver struct {
	mu     sync.Mutex
	api    *webrtc.API
	peer   *webrtc.PeerConnection
	handle PayloadHandler
}

// NewReceiver initializes a WebRTC API with default codecs/interceptors.
func NewReceiver(handle PayloadHandler) (*Receiver, error) {
	if handle == nil {
		return nil, fmt.Errorf("payload handler is required")
	}
	media := &webrtc.MediaEngine{}
	if err := media.RegisterDefaultCodecs(); err != nil {
		return nil, fmt.Errorf("register codecs: %w", err)
	}

	interceptors := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(media, interceptors); err != nil {
		return nil, fmt.Errorf("register interceptors: %w", err)
	}

	api := webrtc.NewAPI(
		webrtc.WithMediaEngine(media),
		webrtc.WithInterceptorRegistry(interceptors),
	)

	return &Receiver{api: api, handle: handle}, nil
}

// NewPeer replaces the current peer connection with a fresh one.
func (r *Receiver) NewPeer() (*webrtc.PeerConnection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.peer != nil {
		_ = r.peer.Close()
		r.peer = nil
	}

	peer, err := r.api.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		return nil, err
	}
	peer.OnDataChannel(r.attachChannel)

	r.peer = peer
	return peer, nil
}

// ClosePeer closes the current peer connection.
func (r *Receiver) ClosePeer() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.peer != nil {
		_ = r.peer.Close()
		r.peer = nil
	}
}

// attachChannel routes messages from the reports channel to the handler.
func (r *Receiver) attachChannel(dc *webrtc.DataChannel) {
	if dc.Label() != ChannelLabel {
		log.Printf("webrtc: ignoring data channel %q", dc.Label())
		return
	}
	send := func(data []byte) error {
		return dc.Send(data)
	}
	dc.OnOpen(func() {
		log.Printf("webrtc: channel %q open", dc.Label())
	})
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		if debugEnabled() {
			log.Printf("webrtc: payload %s", msg.Data)
		}
		if err := r.handle(msg.Data, send); err != nil {
			log.Printf("webrtc: %v", err)
			_ = dc.Close()
		}
	})
}
