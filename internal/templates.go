package internal

import "html/template"

// pageTemplates holds every server-rendered page. The shells stay
// deliberately small: the front end is glue around the API, not a design
// system.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/style.css">
</head>
<body>
<nav class="top-nav">
<a href="/diary">Diary</a>
{{if .LoggedIn}}<a href="/profile">Profile</a>{{else}}<a href="/login">Login</a>{{end}}
</nav>
<main>{{end}}

{{define "foot"}}</main>
</body>
</html>{{end}}

{{define "error_panel"}}
<div class="error">
<h2>Error</h2>
<p>{{.Message}}</p>
{{if .APIURL}}<p class="error-detail">API URL: {{.APIURL}}</p>{{end}}
<p class="error-detail">Make sure the API server is running</p>
{{if .RetryURL}}<p><a class="retry" href="{{.RetryURL}}">Retry</a></p>{{end}}
</div>
{{end}}

{{define "diary"}}{{template "head" .}}
<h1>A Digital Diary</h1>
{{if .Err}}{{template "error_panel" .Err}}{{else}}
<div id="diary-entries">
{{if not .Entries}}<p>No memos found.</p>{{end}}
{{range .Entries}}
<div class="entry">
<a href="/memo?number={{.Number}}" class="entry-link">
<span class="entry-number">Memo #{{.Number}}.</span>
<span class="entry-title">{{.Title}}.</span>
<span class="entry-date">{{.Date}}</span>
</a>
</div>
{{end}}
</div>
{{if gt .View.TotalPages 1}}
<div id="pagination">
{{if .Strip.HasPrev}}<a class="page-btn" href="/diary?page={{.PrevPage}}">&larr; Previous</a>{{else}}<span class="page-btn disabled">&larr; Previous</span>{{end}}
{{if .Strip.ShowFirst}}<a class="page-btn" href="/diary?page=1">1</a>{{end}}
{{if .Strip.LeadingEllipsis}}<span class="ellipsis">...</span>{{end}}
{{range .Strip.Pages}}
{{if eq . $.View.CurrentPage}}<span class="page-btn current">{{.}}</span>{{else}}<a class="page-btn" href="/diary?page={{.}}">{{.}}</a>{{end}}
{{end}}
{{if .Strip.TrailingEllipsis}}<span class="ellipsis">...</span>{{end}}
{{if .Strip.ShowLast}}<a class="page-btn" href="/diary?page={{.View.TotalPages}}">{{.View.TotalPages}}</a>{{end}}
{{if .Strip.HasNext}}<a class="page-btn" href="/diary?page={{.NextPage}}">Next &rarr;</a>{{else}}<span class="page-btn disabled">Next &rarr;</span>{{end}}
<div class="page-summary">Page {{.View.CurrentPage}} of {{.View.TotalPages}} ({{.View.TotalCount}} memos total)</div>
</div>
{{end}}
{{end}}
{{template "foot" .}}{{end}}

{{define "memo"}}{{template "head" .}}
{{if .Err}}{{template "error_panel" .Err}}<p><a href="/diary">&larr; Back to Diary</a></p>{{else}}
<article>
<h1>Memo #{{.Memo.Number}}</h1>
<h2>{{.Memo.Title}}</h2>
<p class="article-date">{{.DateDisplay}}</p>
<div class="article-content">{{.ContentHTML}}</div>
<div class="article-navigation">
{{if .Nav.Previous}}<a href="/memo?number={{.Nav.Previous.Number}}" class="nav-button prev">&larr; Previous Memo</a>{{else}}<span></span>{{end}}
{{if .Nav.Next}}<a href="/memo?number={{.Nav.Next.Number}}" class="nav-button next">Next Memo &rarr;</a>{{end}}
</div>
</article>
{{end}}
{{template "foot" .}}{{end}}

{{define "login"}}{{template "head" .}}
<h1>Login</h1>
{{if .Error}}<div class="error-message">{{.Error}}</div>{{end}}
<form method="post" action="/login" class="login-form">
<label>Username <input type="text" name="username" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Login</button>
</form>
{{template "foot" .}}{{end}}

{{define "profile"}}{{template "head" .}}
<h1>Profile</h1>
<p>Logged in as <strong>{{.Username}}</strong>{{if .TokenExpiry}} (session expires {{.TokenExpiry}}){{end}}</p>
<form method="post" action="/logout" class="logout-form"><button type="submit">Logout</button></form>

{{if .Banner}}<div class="success-message">{{.Banner}}</div>{{end}}
{{if .BannerError}}<div class="error-message">{{.BannerError}}</div>{{end}}
{{if .Preview}}
<div class="memo-preview">
<h3>Preview: Memo #{{.Preview.Number}}</h3>
<p><strong>Title:</strong> {{.Preview.Title}}</p>
<p><strong>Date:</strong> {{.Preview.Date}}</p>
<p><strong>Content:</strong> {{.Preview.Excerpt}}</p>
<p><a href="/memo?number={{.Preview.Number}}">View full memo &rarr;</a></p>
</div>
{{end}}

<section>
<h2>New Memo</h2>
<form method="post" action="/profile/memo" class="memo-form">
<label>Title <input type="text" name="title" required></label>
<label>Date <input type="date" name="date" value="{{.Today}}" required></label>
<label>Content <textarea name="content" rows="10" required></textarea></label>
<button type="submit">Create Memo</button>
</form>
</section>

<section>
<h2>Personal Information</h2>
<form method="post" action="/profile/info" class="info-form">
<label>Email <input type="email" name="email" value="{{.Email}}"></label>
<label>Bio <textarea name="bio" rows="4">{{.Bio}}</textarea></label>
<button type="submit">Save</button>
</form>
</section>

<section>
<h2>Your Memos</h2>
{{if .Err}}{{template "error_panel" .Err}}{{else}}
{{if not .Entries}}<p>No memos found.</p>{{end}}
{{range .Entries}}
<div class="entry">
<a href="/memo?number={{.Number}}" class="entry-link">
<span class="entry-number">Memo #{{.Number}}.</span>
<span class="entry-title">{{.Title}}.</span>
<span class="entry-date">{{.Date}}</span>
</a>
</div>
{{end}}
{{if gt .View.TotalPages 1}}
<div class="profile-pagination">
{{if .View.HasPrev}}<a class="page-btn" href="/profile?page={{.PrevPage}}">&larr; Previous</a>{{end}}
<span class="page-summary">Page {{.View.CurrentPage}} of {{.View.TotalPages}}</span>
{{if .View.HasNext}}<a class="page-btn" href="/profile?page={{.NextPage}}">Next &rarr;</a>{{end}}
</div>
{{end}}
{{end}}
</section>
{{template "foot" .}}{{end}}
`

// stylesheet is the minimal embedded page shell styling.
const stylesheet = `
body { font-family: Georgia, serif; max-width: 48rem; margin: 0 auto; padding: 1rem; color: #222; }
.top-nav a { margin-right: 1rem; }
.entry { padding: 0.4rem 0; border-bottom: 1px solid #eee; }
.entry-link { text-decoration: none; color: inherit; }
.entry-number { font-weight: bold; margin-right: 0.4rem; }
.entry-date { color: #666; font-size: 0.9em; margin-left: 0.4rem; }
#pagination, .profile-pagination { margin-top: 2rem; text-align: center; }
.page-btn { display: inline-block; padding: 0.4rem 0.8rem; margin: 0 0.15rem; border: 1px solid #ddd; border-radius: 6px; text-decoration: none; }
.page-btn.current { background: #4a9eff; color: white; border-color: #4a9eff; }
.page-btn.disabled { color: #999; border-color: #eee; }
.page-summary { margin-top: 1rem; color: #666; font-size: 0.9rem; }
.article-date { color: #666; }
.article-navigation { display: flex; justify-content: space-between; margin-top: 2rem; }
.error { padding: 2rem; text-align: center; }
.error-detail { font-size: 0.9em; color: #666; margin-top: 0.5rem; }
.error-message { background: #fde8e8; color: #9b1c1c; padding: 0.75rem; border-radius: 6px; margin: 1rem 0; }
.success-message { background: #def7ec; color: #03543f; padding: 0.75rem; border-radius: 6px; margin: 1rem 0; }
.memo-preview { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
.memo-form label, .info-form label, .login-form label { display: block; margin: 0.75rem 0; }
input[type=text], input[type=email], input[type=password], input[type=date], textarea { width: 100%; padding: 0.4rem; }
`

func parseTemplates() *template.Template {
	return template.Must(template.New("pages").Parse(pageTemplates))
}
