// Package spectate 通过 websocket 向观众推送会话快照
//
// 每个观众有一个有界的发送队列；队列满时丢弃该观众的这一帧，
// 慢速观众不会阻塞模拟循环。帧内容为 msgpack 编码的 game.Snapshot。
package spectate

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/decker502/cannonade/pkg/game"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// QueueSize 每个观众的发送队列长度
	QueueSize = 16

	writeTimeout = 5 * time.Second
)

type viewer struct {
	id   string
	send chan []byte
	done chan struct{}
}

// Hub 观众集合
type Hub struct {
	mu      sync.Mutex
	viewers map[string]*viewer
	closed  bool
	dropped int
}

// NewHub 创建观众集合
func NewHub() *Hub {
	return &Hub{viewers: make(map[string]*viewer)}
}

// Encode 把快照编码为一帧
func Encode(snap game.Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode 解码一帧
func Decode(frame []byte) (game.Snapshot, error) {
	var snap game.Snapshot
	if err := msgpack.Unmarshal(frame, &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// Publish 编码一次并推送给所有观众
func (h *Hub) Publish(snap game.Snapshot) error {
	frame, err := Encode(snap)
	if err != nil {
		return err
	}
	h.Broadcast(frame)
	return nil
}

// Broadcast 把一帧放入每个观众的队列，队列满则丢弃
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, v := range h.viewers {
		select {
		case v.send <- frame:
		default:
			h.dropped++
		}
	}
}

// ViewerCount 当前观众数
func (h *Hub) ViewerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Dropped 因队列满被丢弃的帧数（按观众累计）
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close 断开所有观众，之后的连接请求被拒绝
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, v := range h.viewers {
		close(v.done)
		delete(h.viewers, id)
	}
}

func (h *Hub) register() (*viewer, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, false
	}
	v := &viewer{
		id:   uuid.NewString(),
		send: make(chan []byte, QueueSize),
		done: make(chan struct{}),
	}
	h.viewers[v.id] = v
	return v, true
}

func (h *Hub) unregister(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.viewers[v.id]; ok {
		delete(h.viewers, v.id)
		close(v.done)
	}
}

// Handler 返回 websocket 端点
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(h.serveWS)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	v, ok := h.register()
	if !ok {
		http.Error(w, "spectator hub closed", http.StatusServiceUnavailable)
		return
	}
	defer h.unregister(v)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[Spectate] accept failed: %v", err)
		return
	}
	defer conn.CloseNow()

	log.Printf("[Spectate] 观众 %s 已连接", v.id)

	// 观众只接收；CloseRead 在对端关闭时取消 ctx
	ctx := conn.CloseRead(r.Context())
	if err := h.pump(ctx, conn, v); err != nil {
		log.Printf("[Spectate] 观众 %s 断开: %v", v.id, err)
		return
	}
	conn.Close(websocket.StatusGoingAway, "spectator hub closed")
}

// pump 把队列中的帧写到连接，直到 hub 关闭或连接断开
func (h *Hub) pump(ctx context.Context, conn *websocket.Conn, v *viewer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-v.done:
			return nil
		case frame := <-v.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageBinary, frame)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}
