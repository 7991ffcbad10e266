package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"othelloplay/internal/board"
	"othelloplay/internal/engine"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	eng := engine.NewEngine(20 * time.Millisecond)
	srv := New(eng, board.Black, zerolog.Nop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getState(t *testing.T, ts *httptest.Server) State {
	t.Helper()
	resp, err := http.Get(ts.URL + "/api/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	return state
}

func postMove(t *testing.T, ts *httptest.Server, move string) (*http.Response, State) {
	t.Helper()
	body, err := json.Marshal(moveRequest{Move: move})
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+"/api/move", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var state State
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	}
	return resp, state
}

func TestInitialState(t *testing.T) {
	ts := newTestServer(t)

	state := getState(t, ts)
	assert.Equal(t, "black", state.NextPlayer)
	assert.Equal(t, "black", state.HumanSide)
	assert.Equal(t, 2, state.BlackDiscs)
	assert.Equal(t, 2, state.WhiteDiscs)
	assert.Equal(t, "playing", state.Status)
	assert.ElementsMatch(t, []string{"d3", "c4", "f5", "e6"}, state.LegalMoves)
}

func TestMoveAndEngineReply(t *testing.T) {
	ts := newTestServer(t)

	resp, state := postMove(t, ts, "d3")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The engine answered for white, so it is black's turn again and six
	// discs are on the board.
	assert.Equal(t, "black", state.NextPlayer)
	assert.Equal(t, 6, state.BlackDiscs+state.WhiteDiscs)
}

func TestIllegalMoveRejected(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := postMove(t, ts, "a1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = postMove(t, ts, "z9")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Position unchanged.
	state := getState(t, ts)
	assert.Equal(t, 4, state.BlackDiscs+state.WhiteDiscs)
}

func TestReset(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := postMove(t, ts, "d3")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/reset", nil)
	require.NoError(t, err)
	rresp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	rresp.Body.Close()
	require.Equal(t, http.StatusOK, rresp.StatusCode)

	state := getState(t, ts)
	assert.Equal(t, 2, state.BlackDiscs)
	assert.Equal(t, 2, state.WhiteDiscs)
	assert.Equal(t, "black", state.NextPlayer)
}
