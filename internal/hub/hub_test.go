package hub

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"liveTrading/internal/enums"
	socketModels "liveTrading/internal/models/socket"
)

type fakeConn struct {
	mu     sync.Mutex
	events []socketModels.ServerEvent
	fail   bool
	closed bool
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.events = append(c.events, v.(socketModels.ServerEvent))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) eventsNamed(name string) []socketModels.ServerEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []socketModels.ServerEvent
	for _, e := range c.events {
		if e.Event == name {
			out = append(out, e)
		}
	}
	return out
}

func (c *fakeConn) lastOnlineUsers() (int, bool) {
	counts := c.eventsNamed(enums.SOCKET_EVENT_ONLINE_USERS)
	if len(counts) == 0 {
		return 0, false
	}
	return counts[len(counts)-1].Payload.(int), true
}

type fakeVerifier struct {
	users map[string]string
}

func (v *fakeVerifier) Verify(_ context.Context, token string) (string, error) {
	userID, ok := v.users[token]
	if !ok {
		return "", errors.New("invalid token")
	}
	return userID, nil
}

func newTestHub() *Hub {
	verifier := &fakeVerifier{users: map[string]string{
		"alice-token": "alice",
		"bob-token":   "bob",
		"carol-token": "carol",
	}}
	return NewHub(verifier, zap.NewNop())
}

func authenticate(t *testing.T, h *Hub, sessionID, token string) {
	t.Helper()
	h.Authenticate(context.Background(), sessionID, token)
}

func TestAuthenticateSuccess(t *testing.T) {
	h := newTestHub()
	conn := &fakeConn{}
	session := h.Connect(conn)

	authenticate(t, h, session.ID, "alice-token")

	acks := conn.eventsNamed(enums.SOCKET_EVENT_AUTHENTICATED)
	require.Len(t, acks, 1)
	assert.True(t, acks[0].Payload.(socketModels.AuthenticatedPayload).Success)

	count, ok := conn.lastOnlineUsers()
	require.True(t, ok)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, h.OnlineUsers())
}

func TestAuthenticateFailure(t *testing.T) {
	h := newTestHub()
	conn := &fakeConn{}
	other := &fakeConn{}
	session := h.Connect(conn)
	h.Connect(other)

	authenticate(t, h, session.ID, "bogus")

	acks := conn.eventsNamed(enums.SOCKET_EVENT_AUTHENTICATED)
	require.Len(t, acks, 1)
	payload := acks[0].Payload.(socketModels.AuthenticatedPayload)
	assert.False(t, payload.Success)
	assert.NotEmpty(t, payload.Error)

	assert.Equal(t, 0, h.OnlineUsers())
	assert.Empty(t, other.events, "failed login must not be broadcast")
}

func TestJoinAnnouncedToAllMembersIncludingJoiner(t *testing.T) {
	h := newTestHub()
	aliceConn, bobConn := &fakeConn{}, &fakeConn{}
	alice := h.Connect(aliceConn)
	bob := h.Connect(bobConn)
	authenticate(t, h, alice.ID, "alice-token")
	authenticate(t, h, bob.ID, "bob-token")

	h.JoinRoom(alice.ID, "room-1")
	h.JoinRoom(bob.ID, "room-1")

	assert.True(t, h.InRoom(alice.ID, "room-1"))
	assert.True(t, h.InRoom(bob.ID, "room-1"))

	// Alice saw her own join and bob's; bob saw only his own.
	require.Len(t, aliceConn.eventsNamed(enums.SOCKET_EVENT_USER_JOINED), 2)
	bobJoins := bobConn.eventsNamed(enums.SOCKET_EVENT_USER_JOINED)
	require.Len(t, bobJoins, 1)
	assert.Equal(t, "bob", bobJoins[0].Payload.(socketModels.PresencePayload).UserID)
}

func TestLeaveAnnouncedToRemainingMembers(t *testing.T) {
	h := newTestHub()
	aliceConn, bobConn := &fakeConn{}, &fakeConn{}
	alice := h.Connect(aliceConn)
	bob := h.Connect(bobConn)
	authenticate(t, h, alice.ID, "alice-token")
	authenticate(t, h, bob.ID, "bob-token")
	h.JoinRoom(alice.ID, "room-1")
	h.JoinRoom(bob.ID, "room-1")

	h.LeaveRoom(bob.ID, "room-1")

	assert.False(t, h.InRoom(bob.ID, "room-1"))
	assert.True(t, h.InRoom(alice.ID, "room-1"))

	leaves := aliceConn.eventsNamed(enums.SOCKET_EVENT_USER_LEFT)
	require.Len(t, leaves, 1)
	assert.Equal(t, "bob", leaves[0].Payload.(socketModels.PresencePayload).UserID)
	// Bob left before the announcement went out.
	assert.Empty(t, bobConn.eventsNamed(enums.SOCKET_EVENT_USER_LEFT))
}

func TestUnauthenticatedMayJoinRooms(t *testing.T) {
	h := newTestHub()
	conn := &fakeConn{}
	session := h.Connect(conn)

	h.JoinRoom(session.ID, "room-1")

	assert.True(t, h.InRoom(session.ID, "room-1"))
	joins := conn.eventsNamed(enums.SOCKET_EVENT_USER_JOINED)
	require.Len(t, joins, 1)
	assert.Empty(t, joins[0].Payload.(socketModels.PresencePayload).UserID)
}

func TestUnauthenticatedChatRejectedLocally(t *testing.T) {
	h := newTestHub()
	senderConn, memberConn := &fakeConn{}, &fakeConn{}
	sender := h.Connect(senderConn)
	member := h.Connect(memberConn)
	authenticate(t, h, member.ID, "bob-token")
	h.JoinRoom(sender.ID, "room-1")
	h.JoinRoom(member.ID, "room-1")

	h.RelayChatMessage(sender.ID, "room-1", "hello")

	errorEvents := senderConn.eventsNamed(enums.SOCKET_EVENT_ERROR)
	require.Len(t, errorEvents, 1)
	assert.Equal(t, "please login first", errorEvents[0].Payload.(socketModels.ErrorPayload).Message)

	assert.Empty(t, memberConn.eventsNamed(enums.SOCKET_EVENT_NEW_MESSAGE))
	assert.Empty(t, memberConn.eventsNamed(enums.SOCKET_EVENT_ERROR))
}

func TestUnauthenticatedTradingCallRejectedLocally(t *testing.T) {
	h := newTestHub()
	senderConn, otherConn := &fakeConn{}, &fakeConn{}
	sender := h.Connect(senderConn)
	other := h.Connect(otherConn)
	authenticate(t, h, other.ID, "bob-token")

	h.RelayTradingCall(sender.ID, socketModels.TradingCallPayload{StockCode: "AAPL", Action: "buy", Price: 190})

	errorEvents := senderConn.eventsNamed(enums.SOCKET_EVENT_ERROR)
	require.Len(t, errorEvents, 1)
	assert.Equal(t, "unauthorized action", errorEvents[0].Payload.(socketModels.ErrorPayload).Message)
	assert.Empty(t, otherConn.eventsNamed(enums.SOCKET_EVENT_NEW_TRADING_CALL))
}

func TestChatIsRoomScopedAndIncludesSender(t *testing.T) {
	h := newTestHub()
	aliceConn, bobConn, carolConn := &fakeConn{}, &fakeConn{}, &fakeConn{}
	alice := h.Connect(aliceConn)
	bob := h.Connect(bobConn)
	carol := h.Connect(carolConn)
	authenticate(t, h, alice.ID, "alice-token")
	authenticate(t, h, bob.ID, "bob-token")
	authenticate(t, h, carol.ID, "carol-token")
	h.JoinRoom(alice.ID, "room-1")
	h.JoinRoom(bob.ID, "room-1")
	h.JoinRoom(carol.ID, "room-2")

	h.RelayChatMessage(alice.ID, "room-1", "buy the dip")

	for _, conn := range []*fakeConn{aliceConn, bobConn} {
		messages := conn.eventsNamed(enums.SOCKET_EVENT_NEW_MESSAGE)
		require.Len(t, messages, 1)
		payload := messages[0].Payload.(socketModels.NewMessagePayload)
		assert.Equal(t, "alice", payload.UserID)
		assert.Equal(t, "room-1", payload.RoomID)
		assert.Equal(t, "buy the dip", payload.Message)
		assert.False(t, payload.Timestamp.IsZero())
	}
	assert.Empty(t, carolConn.eventsNamed(enums.SOCKET_EVENT_NEW_MESSAGE))
}

func TestTradingCallsAreGlobal(t *testing.T) {
	h := newTestHub()
	aliceConn, bobConn, guestConn := &fakeConn{}, &fakeConn{}, &fakeConn{}
	alice := h.Connect(aliceConn)
	bob := h.Connect(bobConn)
	h.Connect(guestConn)
	authenticate(t, h, alice.ID, "alice-token")
	authenticate(t, h, bob.ID, "bob-token")
	h.JoinRoom(alice.ID, "room-1")
	// Bob and the guest are in no room at all.

	h.RelayTradingCall(alice.ID, socketModels.TradingCallPayload{
		StockCode: "TSLA",
		Action:    "sell",
		Price:     250.5,
		Reason:    "overextended",
	})

	for _, conn := range []*fakeConn{aliceConn, bobConn, guestConn} {
		calls := conn.eventsNamed(enums.SOCKET_EVENT_NEW_TRADING_CALL)
		require.Len(t, calls, 1)
		payload := calls[0].Payload.(socketModels.NewTradingCallPayload)
		assert.Equal(t, "alice", payload.UserID)
		assert.Equal(t, "TSLA", payload.StockCode)
		assert.Equal(t, "sell", payload.Action)
		assert.Equal(t, 250.5, payload.Price)
	}
}

func TestDisconnectEmitsNoLeaveEventsButUpdatesOnlineUsers(t *testing.T) {
	h := newTestHub()
	aliceConn, bobConn := &fakeConn{}, &fakeConn{}
	alice := h.Connect(aliceConn)
	bob := h.Connect(bobConn)
	authenticate(t, h, alice.ID, "alice-token")
	authenticate(t, h, bob.ID, "bob-token")
	h.JoinRoom(alice.ID, "room-1")
	h.JoinRoom(bob.ID, "room-1")
	require.Equal(t, 2, h.OnlineUsers())

	h.Disconnect(bob.ID)

	assert.Empty(t, aliceConn.eventsNamed(enums.SOCKET_EVENT_USER_LEFT))
	assert.False(t, h.InRoom(bob.ID, "room-1"))
	assert.Equal(t, 1, h.OnlineUsers())

	count, ok := aliceConn.lastOnlineUsers()
	require.True(t, ok)
	assert.Equal(t, 1, count)
}

func TestOnlineUsersCountsDistinctUsers(t *testing.T) {
	h := newTestHub()
	first := h.Connect(&fakeConn{})
	second := h.Connect(&fakeConn{})
	authenticate(t, h, first.ID, "alice-token")
	authenticate(t, h, second.ID, "alice-token")

	assert.Equal(t, 1, h.OnlineUsers())
}

func TestStaleDisconnectKeepsSupersedingPresence(t *testing.T) {
	h := newTestHub()
	oldConn, newConn := &fakeConn{}, &fakeConn{}
	oldSession := h.Connect(oldConn)
	newSession := h.Connect(newConn)
	authenticate(t, h, oldSession.ID, "alice-token")
	authenticate(t, h, newSession.ID, "alice-token")

	// The older connection going away must not take the newer login offline.
	h.Disconnect(oldSession.ID)
	assert.Equal(t, 1, h.OnlineUsers())

	h.Disconnect(newSession.ID)
	assert.Equal(t, 0, h.OnlineUsers())
}

func TestReauthenticationReleasesPreviousIdentity(t *testing.T) {
	h := newTestHub()
	conn := &fakeConn{}
	session := h.Connect(conn)
	authenticate(t, h, session.ID, "alice-token")
	authenticate(t, h, session.ID, "bob-token")

	assert.Equal(t, 1, h.OnlineUsers())

	h.Disconnect(session.ID)
	assert.Equal(t, 0, h.OnlineUsers())
}

func TestWriteFailureEvictsSession(t *testing.T) {
	h := newTestHub()
	aliceConn := &fakeConn{}
	brokenConn := &fakeConn{fail: true}
	alice := h.Connect(aliceConn)
	broken := h.Connect(brokenConn)
	authenticate(t, h, alice.ID, "alice-token")
	h.JoinRoom(alice.ID, "room-1")
	h.JoinRoom(broken.ID, "room-1")

	h.RelayChatMessage(alice.ID, "room-1", "ping")

	assert.True(t, brokenConn.closed)
	assert.False(t, h.InRoom(broken.ID, "room-1"))

	messages := aliceConn.eventsNamed(enums.SOCKET_EVENT_NEW_MESSAGE)
	require.Len(t, messages, 1)
}

func TestRejoinAnnouncesAgain(t *testing.T) {
	h := newTestHub()
	aliceConn, bobConn := &fakeConn{}, &fakeConn{}
	alice := h.Connect(aliceConn)
	bob := h.Connect(bobConn)
	authenticate(t, h, alice.ID, "alice-token")
	authenticate(t, h, bob.ID, "bob-token")
	h.JoinRoom(alice.ID, "room-1")
	h.JoinRoom(bob.ID, "room-1")

	// Joining again keeps one membership but still announces to the room.
	h.JoinRoom(alice.ID, "room-1")

	aliceJoins := aliceConn.eventsNamed(enums.SOCKET_EVENT_USER_JOINED)
	require.Len(t, aliceJoins, 3)
	assert.Equal(t, "alice", aliceJoins[2].Payload.(socketModels.PresencePayload).UserID)

	bobJoins := bobConn.eventsNamed(enums.SOCKET_EVENT_USER_JOINED)
	require.Len(t, bobJoins, 2)
	assert.Equal(t, "alice", bobJoins[1].Payload.(socketModels.PresencePayload).UserID)
}

func TestJoinTwiceKeepsSingleMembership(t *testing.T) {
	h := newTestHub()
	aliceConn, bobConn := &fakeConn{}, &fakeConn{}
	alice := h.Connect(aliceConn)
	bob := h.Connect(bobConn)
	authenticate(t, h, alice.ID, "alice-token")
	authenticate(t, h, bob.ID, "bob-token")
	h.JoinRoom(alice.ID, "room-1")
	h.JoinRoom(bob.ID, "room-1")
	h.JoinRoom(alice.ID, "room-1")

	h.RelayChatMessage(bob.ID, "room-1", "hello")

	// A duplicate join must not double-deliver room traffic.
	require.Len(t, aliceConn.eventsNamed(enums.SOCKET_EVENT_NEW_MESSAGE), 1)
}

func TestShutdownClosesEverything(t *testing.T) {
	h := newTestHub()
	conns := []*fakeConn{{}, {}, {}}
	for _, conn := range conns {
		h.Connect(conn)
	}

	h.Shutdown()

	for _, conn := range conns {
		assert.True(t, conn.closed)
	}
	assert.Equal(t, 0, h.OnlineUsers())
}
