package spectate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/decker502/cannonade/pkg/game"
	"github.com/decker502/cannonade/pkg/vecmath"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("等待超时")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func dial(t *testing.T, ctx context.Context, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func sampleSnapshot() game.Snapshot {
	return game.Snapshot{
		SessionID: "session-1",
		Tick:      42,
		Time:      0.7,
		State:     "playing",
		Kills:     2,
		Enemies: []game.EnemyView{
			{ID: 3, Position: vecmath.V3(1, 0.08, 2), State: "moving", Anim: "walk"},
		},
		Preview: []vecmath.Vec3{vecmath.V3(0, 1, 0), vecmath.V3(1, 2, 1)},
	}
}

func TestEncodeDecode(t *testing.T) {
	want := sampleSnapshot()
	frame, err := Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	if got.SessionID != want.SessionID || got.Tick != want.Tick || got.Kills != want.Kills {
		t.Errorf("header = %+v", got)
	}
	if len(got.Enemies) != 1 || got.Enemies[0].Position != want.Enemies[0].Position {
		t.Errorf("enemies = %+v", got.Enemies)
	}
	if len(got.Preview) != 2 || got.Preview[1] != want.Preview[1] {
		t.Errorf("preview = %v", got.Preview)
	}

	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("非法帧应返回错误")
	}
}

func TestHubStreamsSnapshots(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, ctx, srv)
	defer conn.CloseNow()

	waitFor(t, func() bool { return hub.ViewerCount() == 1 })

	if err := hub.Publish(sampleSnapshot()); err != nil {
		t.Fatal(err)
	}

	typ, frame, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if typ != websocket.MessageBinary {
		t.Errorf("message type = %v, want binary", typ)
	}
	snap, err := Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	if snap.SessionID != "session-1" || snap.Tick != 42 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestHubUnregistersOnDisconnect(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, ctx, srv)
	waitFor(t, func() bool { return hub.ViewerCount() == 1 })

	conn.Close(websocket.StatusNormalClosure, "bye")
	waitFor(t, func() bool { return hub.ViewerCount() == 0 })
}

func TestHubCloseDisconnectsViewers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, ctx, srv)
	defer conn.CloseNow()
	waitFor(t, func() bool { return hub.ViewerCount() == 1 })

	hub.Close()
	hub.Close()

	if _, _, err := conn.Read(ctx); err == nil {
		t.Error("hub 关闭后读取应失败")
	}
	if hub.ViewerCount() != 0 {
		t.Errorf("ViewerCount = %d, want 0", hub.ViewerCount())
	}

	// 关闭后拒绝新连接
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	if _, _, err := websocket.Dial(ctx, url, nil); err == nil {
		t.Error("关闭后应拒绝新观众")
	}
}

// TestBroadcastDropsWhenQueueFull 慢速观众的队列满时丢帧而不是阻塞
func TestBroadcastDropsWhenQueueFull(t *testing.T) {
	hub := NewHub()
	v, ok := hub.register()
	if !ok {
		t.Fatal("register failed")
	}

	for i := 0; i < QueueSize+5; i++ {
		hub.Broadcast([]byte{byte(i)})
	}

	if len(v.send) != QueueSize {
		t.Errorf("queue len = %d, want %d", len(v.send), QueueSize)
	}
	if hub.Dropped() != 5 {
		t.Errorf("Dropped = %d, want 5", hub.Dropped())
	}

	// 队列保留最早的帧
	if first := <-v.send; first[0] != 0 {
		t.Errorf("first frame = %d, want 0", first[0])
	}

	hub.unregister(v)
	hub.unregister(v)
	if hub.ViewerCount() != 0 {
		t.Error("unregister 应移除观众")
	}
}
