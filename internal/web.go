package internal

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// WebApp serves the diary front end: server-rendered pages that proxy the
// remote memo API. Each handler is one page controller; its whole load
// routine is wrapped so failures render an inline error panel instead of a
// blank page.
type WebApp struct {
	client  *Client
	auth    *Authenticator
	session *SessionStore
	tmpl    *template.Template
}

func NewWebApp(client *Client, auth *Authenticator, session *SessionStore) *WebApp {
	return &WebApp{
		client:  client,
		auth:    auth,
		session: session,
		tmpl:    parseTemplates(),
	}
}

func (a *WebApp) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/diary", http.StatusFound)
	})
	r.Get("/diary", a.handleDiary)
	r.Get("/memo", a.handleMemo)
	r.Get("/login", a.handleLoginForm)
	r.Post("/login", a.handleLogin)
	r.Post("/logout", a.handleLogout)
	r.Get("/profile", a.handleProfile)
	r.Post("/profile/memo", a.handleCreateMemo)
	r.Post("/profile/info", a.handleSaveInfo)
	r.Get("/style.css", a.handleStylesheet)

	return r
}

type pageData struct {
	Title    string
	LoggedIn bool
}

func (a *WebApp) page(title string) pageData {
	return pageData{
		Title:    title,
		LoggedIn: a.session.IsAuthenticated(),
	}
}

type errorPanel struct {
	Message  string
	APIURL   string
	RetryURL string
}

type entryRow struct {
	Number int
	Title  string
	Date   string
}

func entryRows(memos []Memo) []entryRow {
	rows := make([]entryRow, 0, len(memos))
	for _, m := range memos {
		// rows missing required fields are skipped, not fatal
		if m.Number <= 0 || m.Title == "" || m.Date == "" {
			continue
		}
		rows = append(rows, entryRow{
			Number: m.Number,
			Title:  m.Title,
			Date:   FormatDate(m.Date),
		})
	}
	return rows
}

type diaryPage struct {
	pageData
	Entries  []entryRow
	View     ListView
	Strip    PageStrip
	PrevPage int
	NextPage int
	Err      *errorPanel
}

func (a *WebApp) handleDiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := queryInt(r, "page", 1)

	data := diaryPage{pageData: a.page("A Digital Diary")}

	renderErr := func(msg string) {
		data.Err = &errorPanel{
			Message:  msg,
			APIURL:   a.client.BaseURL() + "/api/memos",
			RetryURL: r.URL.RequestURI(),
		}
		a.render(w, "diary", data)
	}

	// Learn the total count once per load, then fetch exactly one page.
	probe, err := a.client.ListMemos(ctx, "desc", CountProbeLimit, 0)
	if err != nil {
		renderErr(err.Error())
		return
	}

	view := NewListView(page, len(probe)).Clamped()
	memos, err := a.client.ListMemos(ctx, "desc", view.PageSize, view.Skip())
	if err != nil {
		renderErr(err.Error())
		return
	}

	data.Entries = entryRows(memos)
	data.View = view
	data.Strip = view.Strip(PageWindowWidth)
	data.PrevPage = view.CurrentPage - 1
	data.NextPage = view.CurrentPage + 1
	a.render(w, "diary", data)
}

type memoPage struct {
	pageData
	Memo        *Memo
	DateDisplay string
	ContentHTML template.HTML
	Nav         *Navigation
	Err         *errorPanel
}

func (a *WebApp) handleMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := memoPage{pageData: a.page("A Digital Diary")}

	renderErr := func(msg string) {
		data.Err = &errorPanel{
			Message: msg,
			APIURL:  a.client.BaseURL(),
		}
		a.render(w, "memo", data)
	}

	number, err := strconv.Atoi(r.URL.Query().Get("number"))
	if err != nil || number < 1 {
		renderErr("Memo number not specified.")
		return
	}

	memo, nav, err := a.loadMemoWithNav(ctx, number)
	if err != nil {
		renderErr(err.Error())
		return
	}

	if err := memo.Validate(); err != nil {
		renderErr("Invalid memo data received from API")
		return
	}

	data.Title = "Memo #" + strconv.Itoa(memo.Number) + ": " + memo.Title + " - A Digital Diary"
	data.Memo = memo
	data.DateDisplay = FormatDate(memo.Date)
	data.ContentHTML = template.HTML(FormatContent(memo.Content))
	data.Nav = nav
	a.render(w, "memo", data)
}

// loadMemoWithNav fetches the memo and its neighbors concurrently. The
// navigation fetch failing degrades to empty neighbors; only the memo fetch
// can fail the page.
func (a *WebApp) loadMemoWithNav(ctx context.Context, number int) (*Memo, *Navigation, error) {
	type navResult struct {
		nav *Navigation
		err error
	}

	navCh := make(chan navResult, 1)
	go func() {
		nav, err := a.client.GetNavigation(ctx, number)
		navCh <- navResult{nav: nav, err: err}
	}()

	memo, err := a.client.GetMemo(ctx, number)
	res := <-navCh
	if err != nil {
		return nil, nil, err
	}

	if res.err != nil {
		return memo, &Navigation{}, nil
	}
	return memo, res.nav, nil
}

type loginPage struct {
	pageData
	Error string
}

func (a *WebApp) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, "login", loginPage{pageData: a.page("Login - A Digital Diary")})
}

func (a *WebApp) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if _, err := a.auth.Login(r.Context(), username, password); err != nil {
		data := loginPage{pageData: a.page("Login - A Digital Diary")}
		data.Error = loginFailureMessage(err)
		a.render(w, "login", data)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func loginFailureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return err.Error()
}

func (a *WebApp) handleLogout(w http.ResponseWriter, r *http.Request) {
	_ = a.auth.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type previewData struct {
	Number  int
	Title   string
	Date    string
	Excerpt string
}

type profilePage struct {
	pageData
	Username    string
	Email       string
	Bio         string
	Today       string
	TokenExpiry string
	Banner      string
	BannerError string
	Preview     *previewData
	Entries     []entryRow
	View        ListView
	PrevPage    int
	NextPage    int
	Err         *errorPanel
}

func (a *WebApp) profileData(ctx context.Context, user *User, page int) profilePage {
	data := profilePage{
		pageData: a.page("Profile - A Digital Diary"),
		Username: user.Username,
		Today:    time.Now().Format("2006-01-02"),
	}
	data.Email, data.Bio = a.session.ProfileInfo()

	if exp, ok := a.session.TokenExpiry(); ok {
		data.TokenExpiry = exp.Local().Format("Jan 2 15:04")
	}

	probe, err := a.client.ListMemos(ctx, "desc", CountProbeLimit, 0)
	if err != nil {
		data.Err = &errorPanel{
			Message:  err.Error(),
			APIURL:   a.client.BaseURL() + "/api/memos",
			RetryURL: "/profile",
		}
		return data
	}

	view := NewListView(page, len(probe)).Clamped()
	memos, err := a.client.ListMemos(ctx, "desc", view.PageSize, view.Skip())
	if err != nil {
		data.Err = &errorPanel{
			Message:  err.Error(),
			APIURL:   a.client.BaseURL() + "/api/memos",
			RetryURL: "/profile",
		}
		return data
	}

	data.Entries = entryRows(memos)
	data.View = view
	data.PrevPage = view.CurrentPage - 1
	data.NextPage = view.CurrentPage + 1
	return data
}

func (a *WebApp) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := a.auth.RequireAuth(r.Context())
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := a.profileData(r.Context(), user, queryInt(r, "page", 1))
	a.render(w, "profile", data)
}

func (a *WebApp) handleCreateMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := a.auth.RequireAuth(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	memo := Memo{
		Title:   r.PostFormValue("title"),
		Date:    r.PostFormValue("date"),
		Content: r.PostFormValue("content"),
	}

	if err := memo.ValidateForCreate(); err != nil {
		data := a.profileData(ctx, user, 1)
		data.BannerError = "Please fill in all required fields."
		a.render(w, "profile", data)
		return
	}

	// Next number is max+1 from a 1-item descending list. Racy under
	// concurrent creators; the server rejects duplicates.
	latest, err := a.client.ListMemos(ctx, "desc", 1, 0)
	if err != nil {
		data := a.profileData(ctx, user, 1)
		data.BannerError = "Failed to create memo: " + err.Error()
		a.render(w, "profile", data)
		return
	}
	memo.Number = 1
	if len(latest) > 0 {
		memo.Number = latest[0].Number + 1
	}

	created, err := a.client.CreateMemo(ctx, memo)
	if err != nil {
		data := a.profileData(ctx, user, 1)
		data.BannerError = "Failed to create memo: " + err.Error()
		a.render(w, "profile", data)
		return
	}

	data := a.profileData(ctx, user, 1)
	data.Banner = "Memo created successfully! Memo #" + strconv.Itoa(created.Number) + ": \"" + created.Title + "\""
	data.Preview = &previewData{
		Number:  created.Number,
		Title:   created.Title,
		Date:    FormatDate(created.Date),
		Excerpt: Truncate(created.Content, 100),
	}
	a.render(w, "profile", data)
}

func (a *WebApp) handleSaveInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := a.auth.RequireAuth(ctx)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Placeholder fields: stored locally, never sent to the API.
	_ = a.session.SetProfileInfo(r.PostFormValue("email"), r.PostFormValue("bio"))

	data := a.profileData(ctx, user, 1)
	data.Banner = "Personal information saved successfully!"
	a.render(w, "profile", data)
}

func (a *WebApp) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(stylesheet))
}

func (a *WebApp) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.tmpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
