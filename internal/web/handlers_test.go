package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"gradquest/internal/battle"
	"gradquest/internal/combat"
	"gradquest/internal/game"
	"gradquest/internal/levelgraph"
	"gradquest/internal/rng"
	"gradquest/internal/session"
)

const pathPlay = "/play"

func testServer(t *testing.T) *Server {
	t.Helper()
	tmpl, err := ParseTemplates()
	if err != nil {
		t.Fatalf("ParseTemplates: %v", err)
	}
	return &Server{
		Store:   session.NewMemoryStore[*Session](),
		Balance: game.DefaultBalance(),
		Seed:    42,
		Tmpl:    tmpl,
	}
}

// start opens a run and returns its session id.
func start(t *testing.T, srv *Server) string {
	t.Helper()
	rec := post(t, srv, "", "/start", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("POST /start: expected 303, got %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	t.Fatal("POST /start: expected session cookie")
	return ""
}

func post(t *testing.T, srv *Server, id, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if id != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, srv *Server, id, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if id != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func sessionOf(t *testing.T, srv *Server, id string) *Session {
	t.Helper()
	sess, ok, err := srv.Store.Get(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("session %q not stored (err=%v)", id, err)
	}
	return sess
}

func runOf(t *testing.T, srv *Server, id string) *game.Run {
	t.Helper()
	return sessionOf(t, srv, id).run
}

// requireSeedMap checks that the session's map is the one its seed generates.
func requireSeedMap(t *testing.T, srv *Server, id string) {
	t.Helper()
	sess := sessionOf(t, srv, id)
	want := levelgraph.Generate(rng.New(sess.seed), srv.Balance.Graph)
	if !reflect.DeepEqual(sess.run.Graph(), want) {
		t.Errorf("Expected the map of seed %d, got a different one", sess.seed)
	}
}

// toMap starts a run and walks it past the menu and intro.
func toMap(t *testing.T, srv *Server) string {
	t.Helper()
	id := start(t, srv)
	post(t, srv, id, "/continue", nil)
	post(t, srv, id, "/continue", nil)
	if s := runOf(t, srv, id).Screen(); s != game.ScreenMap {
		t.Fatalf("Expected map screen, got %s", s)
	}
	return id
}

// toBattle enters the start node, which is never the special one.
func toBattle(t *testing.T, srv *Server) string {
	t.Helper()
	id := toMap(t, srv)
	start := runOf(t, srv, id).Graph().Start()
	post(t, srv, id, "/select", url.Values{"node": {strconv.Itoa(int(start))}})
	if s := runOf(t, srv, id).Screen(); s != game.ScreenBattle {
		t.Fatalf("Expected battle screen, got %s", s)
	}
	return id
}

func TestHandleIndex(t *testing.T) {
	srv := testServer(t)
	rec := get(t, srv, "", "/")
	if rec.Code != http.StatusFound {
		t.Errorf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != pathPlay {
		t.Errorf("Expected Location %s, got %q", pathPlay, loc)
	}
}

func TestHandlePlay_NoSessionShowsTitle(t *testing.T) {
	srv := testServer(t)
	rec := get(t, srv, "", pathPlay)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/start"`) {
		t.Error("Expected a new run form")
	}
}

func TestHandleStart_OpensMenu(t *testing.T) {
	srv := testServer(t)
	id := start(t, srv)

	if s := runOf(t, srv, id).Screen(); s != game.ScreenMenu {
		t.Errorf("Expected menu screen, got %s", s)
	}
	body := get(t, srv, id, pathPlay).Body.String()
	if !strings.Contains(body, `class="screen-menu"`) || !strings.Contains(body, "seed 42") {
		t.Errorf("Expected menu page for seed 42, got:\n%s", body)
	}
}

func TestHandleStart_ReusesCookie(t *testing.T) {
	srv := testServer(t)
	id := toMap(t, srv)
	before := sessionOf(t, srv, id)

	rec := post(t, srv, id, "/start", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("Expected the existing cookie to be kept")
	}
	if s := runOf(t, srv, id).Screen(); s != game.ScreenMenu {
		t.Errorf("Expected a fresh run on the menu, got %s", s)
	}
	if after := sessionOf(t, srv, id); after != before {
		t.Error("Expected the session to be reused in place")
	}
}

func TestAction_UnknownSessionRedirects(t *testing.T) {
	srv := testServer(t)
	rec := post(t, srv, "never-stored", "/continue", nil)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("Expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != pathPlay {
		t.Errorf("Expected redirect to %s, got %q", pathPlay, loc)
	}
}

// errReader is an io.Reader that always fails, for ParseForm errors.
type errReader struct{ err error }

func (e *errReader) Read([]byte) (int, error) { return 0, e.err }

func TestAction_ParseFormError_BadRequest(t *testing.T) {
	srv := testServer(t)
	id := start(t, srv)
	req := httptest.NewRequest(http.MethodPost, "/card", &errReader{err: errors.New("read failed")})
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestHandleSelect_LockedNodeIsNoOp(t *testing.T) {
	srv := testServer(t)
	id := toMap(t, srv)
	terminal := runOf(t, srv, id).Graph().Terminal()

	rec := post(t, srv, id, "/select", url.Values{"node": {strconv.Itoa(int(terminal))}})
	if rec.Code != http.StatusSeeOther {
		t.Errorf("Expected 303, got %d", rec.Code)
	}
	if s := runOf(t, srv, id).Screen(); s != game.ScreenMap {
		t.Errorf("Expected to stay on the map, got %s", s)
	}
}

func TestHandleSelect_BadNode(t *testing.T) {
	srv := testServer(t)
	id := toMap(t, srv)
	if rec := post(t, srv, id, "/select", url.Values{"node": {"north"}}); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestHandleCard_BadSlot(t *testing.T) {
	srv := testServer(t)
	id := toBattle(t, srv)

	for _, slot := range []string{"", "abc", "-1", "10"} {
		if rec := post(t, srv, id, "/card", url.Values{"slot": {slot}}); rec.Code != http.StatusBadRequest {
			t.Errorf("slot %q: expected 400, got %d", slot, rec.Code)
		}
	}
}

func TestBattle_PlayCardSettles(t *testing.T) {
	srv := testServer(t)
	id := toBattle(t, srv)
	run := runOf(t, srv, id)

	body := get(t, srv, id, pathPlay).Body.String()
	if !strings.Contains(body, "0/3") {
		t.Errorf("Expected plays counter 0/3, got:\n%s", body)
	}

	slot := run.Hand().Available()[0]
	post(t, srv, id, "/card", url.Values{"slot": {strconv.Itoa(slot)}})
	if _, ok := run.Battle().Phase().(battle.AwaitingTarget); !ok {
		t.Fatalf("Expected awaiting target, got %s", run.Battle().Phase())
	}
	if body := get(t, srv, id, pathPlay).Body.String(); !strings.Contains(body, `action="/cancel"`) {
		t.Error("Expected the picked card to be cancellable")
	}

	post(t, srv, id, "/target", url.Values{"enemy": {"0"}})
	if run.Screen() != game.ScreenBattle {
		t.Fatalf("Expected battle to continue, got %s", run.Screen())
	}
	b := run.Battle()
	if _, ok := b.Phase().(battle.AwaitingCard); !ok {
		t.Errorf("Expected the animation settled back to awaiting card, got %s", b.Phase())
	}
	if b.Plays() != 1 {
		t.Errorf("Expected 1 play, got %d", b.Plays())
	}
	if !run.Hand().IsUsed(slot) {
		t.Errorf("Expected slot %d used", slot)
	}

	body = get(t, srv, id, pathPlay).Body.String()
	if !strings.Contains(body, "1/3") || !strings.Contains(body, "data-sound=") {
		t.Errorf("Expected plays 1/3 and a sound cue, got:\n%s", body)
	}
}

func TestBattle_MissCancelsDamageCard(t *testing.T) {
	srv := testServer(t)
	id := toBattle(t, srv)
	run := runOf(t, srv, id)

	slot := -1
	for _, s := range run.Hand().Available() {
		if run.Player().Deck.Card(s).Kind() == combat.KindDamage {
			slot = s
			break
		}
	}
	if slot < 0 {
		t.Skip("no damage card dealt for this seed")
	}
	post(t, srv, id, "/card", url.Values{"slot": {strconv.Itoa(slot)}})
	post(t, srv, id, "/target", nil)

	if _, ok := run.Battle().Phase().(battle.AwaitingCard); !ok {
		t.Errorf("Expected pick cancelled, got %s", run.Battle().Phase())
	}
	if run.Hand().IsUsed(slot) {
		t.Error("Expected the card to stay in hand")
	}
}

func TestGodModeThenReward(t *testing.T) {
	srv := testServer(t)
	id := toBattle(t, srv)
	run := runOf(t, srv, id)
	before := run.Player().Deck.Card(0).Value()

	post(t, srv, id, "/godmode", nil)
	if run.Screen() != game.ScreenReward {
		t.Fatalf("Expected reward screen, got %s", run.Screen())
	}
	if rec := post(t, srv, id, "/reward", url.Values{"slot": {"0"}}); rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	if run.Screen() != game.ScreenMap {
		t.Errorf("Expected map screen, got %s", run.Screen())
	}
	if got := run.Player().Deck.Card(0).Value(); got != before+1 {
		t.Errorf("Expected card 0 upgraded to %d, got %d", before+1, got)
	}
}

func TestFullRunWithGodMode(t *testing.T) {
	srv := testServer(t)
	id := toMap(t, srv)
	run := runOf(t, srv, id)

	for i := 0; i < 50 && run.Screen() != game.ScreenGameOver; i++ {
		switch run.Screen() {
		case game.ScreenMap:
			next := run.Unlocked()[0]
			post(t, srv, id, "/select", url.Values{"node": {strconv.Itoa(int(next))}})
		case game.ScreenBattle:
			post(t, srv, id, "/godmode", nil)
		case game.ScreenReward:
			post(t, srv, id, "/reward", url.Values{"slot": {"0"}})
		case game.ScreenBonus:
			post(t, srv, id, "/continue", nil)
		default:
			t.Fatalf("Unexpected screen %s", run.Screen())
		}
	}
	if !run.Won() {
		t.Fatalf("Expected a won run, got screen %s", run.Screen())
	}
	if body := get(t, srv, id, pathPlay).Body.String(); !strings.Contains(body, "You graduated!") {
		t.Error("Expected victory page")
	}

	post(t, srv, id, "/continue", nil)
	again := runOf(t, srv, id)
	if again == run {
		t.Fatal("Expected play again to build a new run")
	}
	if again.Screen() != game.ScreenMenu {
		t.Errorf("Expected play again to open the menu, got %s", again.Screen())
	}
}

func TestHandleRestart(t *testing.T) {
	srv := testServer(t)
	id := toBattle(t, srv)

	post(t, srv, id, "/restart", nil)
	run := runOf(t, srv, id)
	if run.Screen() != game.ScreenMenu {
		t.Errorf("Expected menu after restart, got %s", run.Screen())
	}
	if run.Battle() != nil {
		t.Error("Expected battle dropped")
	}
}

func TestSeedLabelReproducesMap(t *testing.T) {
	srv := testServer(t)
	srv.Seed = 0
	id := start(t, srv)
	requireSeedMap(t, srv, id)
	first := sessionOf(t, srv, id).seed

	// Every restart draws a new seed and builds its map from scratch.
	seen := map[uint64]bool{first: true}
	for i := 0; i < 3; i++ {
		post(t, srv, id, "/restart", nil)
		requireSeedMap(t, srv, id)
		seen[sessionOf(t, srv, id).seed] = true
	}
	if len(seen) < 2 {
		t.Errorf("Expected restarts to draw new seeds, got %v", seen)
	}

	body := get(t, srv, id, pathPlay).Body.String()
	want := "seed " + strconv.FormatUint(sessionOf(t, srv, id).seed, 10)
	if !strings.Contains(body, want) {
		t.Errorf("Expected page to show %q", want)
	}
}

func TestPlayAgainReproducesMap(t *testing.T) {
	srv := testServer(t)
	id := toBattle(t, srv)
	run := runOf(t, srv, id)

	for i := 0; i < 50 && run.Screen() != game.ScreenGameOver; i++ {
		switch run.Screen() {
		case game.ScreenMap:
			post(t, srv, id, "/select", url.Values{"node": {strconv.Itoa(int(run.Unlocked()[0]))}})
		case game.ScreenBattle:
			post(t, srv, id, "/godmode", nil)
		case game.ScreenReward:
			post(t, srv, id, "/reward", url.Values{"slot": {"1"}})
		case game.ScreenBonus:
			post(t, srv, id, "/continue", nil)
		}
	}
	post(t, srv, id, "/continue", nil)
	requireSeedMap(t, srv, id)
	if sessionOf(t, srv, id).seed != 42 {
		t.Errorf("Expected the fixed seed 42 kept, got %d", sessionOf(t, srv, id).seed)
	}
}

func TestHandleQuit(t *testing.T) {
	srv := testServer(t)
	id := toMap(t, srv)

	rec := post(t, srv, id, "/quit", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	if _, ok, _ := srv.Store.Get(context.Background(), id); ok {
		t.Error("Expected the run dropped from the store")
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Expected the session cookie expired")
	}
	if body := get(t, srv, id, pathPlay).Body.String(); !strings.Contains(body, `action="/start"`) {
		t.Error("Expected the title page after quitting")
	}
}

func TestHandleMap_NoSession_Redirects(t *testing.T) {
	srv := testServer(t)
	rec := get(t, srv, "", "/map.pdf")
	if rec.Code != http.StatusFound {
		t.Errorf("Expected 302, got %d", rec.Code)
	}
}

func TestHandleMap_ReturnsPDF(t *testing.T) {
	srv := testServer(t)
	id := toMap(t, srv)

	rec := get(t, srv, id, "/map.pdf")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /map.pdf: expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("GET /map.pdf: expected Content-Type application/pdf, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("GET /map.pdf: body is not a PDF (missing %PDF header)")
	}
}

func TestStatic_ServesStylesheet(t *testing.T) {
	srv := testServer(t)
	rec := get(t, srv, "", "/static/style.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != assetCacheControl {
		t.Errorf("Expected Cache-Control %q, got %q", assetCacheControl, cc)
	}
}
