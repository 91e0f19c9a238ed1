package home

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/markbates/goth"
)

// Home is the authenticated landing-off point: a short greeting and the
// entry into the voice interview.
func Home(user *goth.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := "there"
		if user != nil && user.Name != "" {
			name = user.Name
		}
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head>
    <title>PitchMatch - Home</title>
    <meta charset="UTF-8">
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
    <div class="container mt-5">
        <h1>Welcome back, `+html.EscapeString(name)+`</h1>
        <p>Your interview picks up where you left off. The more you share, the better your matches get.</p>
        <a href="#interview" class="btn btn-primary">Continue interview</a>
        <p class="mt-4"><a href="/logout/google">Log out</a></p>
    </div>
</body>
</html>
`)
		return err
	})
}
