package landing

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Marketing is the public landing page. All markup is static presentational
// content; the signup form deliberately has no wired submit handler.
func Marketing() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, marketingHTML)
		return err
	})
}

// Loading is the minimal indicator shown while session resolution is in
// flight.
func Loading() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, loadingHTML)
		return err
	})
}

// ResolutionError renders a session resolution failure. The message is the
// entire visible content for this page load.
func ResolutionError(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head>
    <title>PitchMatch</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
    <div class="container text-center mt-5">
        <p class="text-danger">`+html.EscapeString(message)+`</p>
    </div>
</body>
</html>
`)
		return err
	})
}

const loadingHTML = `<!DOCTYPE html>
<html>
<head>
    <title>PitchMatch</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
    <div class="container text-center mt-5">
        <div class="spinner-border" role="status">
            <span class="visually-hidden">Loading...</span>
        </div>
    </div>
</body>
</html>
`

const marketingHTML = `<!DOCTYPE html>
<html>
<head>
    <title>PitchMatch - Where founders and investors find each other</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <link href="/static/css/landing.css" rel="stylesheet">
</head>
<body>
    <header>
        <nav class="navbar navbar-expand-lg navbar-dark bg-dark fixed-top">
            <div class="container">
                <a class="navbar-brand" href="/">PitchMatch</a>
                <ul class="navbar-nav ms-auto">
                    <li class="nav-item"><a class="nav-link" href="#how-it-works">How it works</a></li>
                    <li class="nav-item"><a class="nav-link" href="#for-founders">For founders</a></li>
                    <li class="nav-item"><a class="nav-link" href="#for-investors">For investors</a></li>
                    <li class="nav-item"><a class="nav-link" href="#about">About</a></li>
                    <li class="nav-item"><a class="nav-link" href="#faq">FAQ</a></li>
                </ul>
                <a href="/auth/google" class="btn btn-outline-light ms-3">Log in</a>
            </div>
        </nav>
    </header>

    <section class="hero" id="hero">
        <video class="hero-video" autoplay muted loop playsinline poster="/static/img/hero-poster.jpg">
            <source src="/static/video/hero.mp4" type="video/mp4">
        </video>
        <div class="hero-overlay container text-center text-white">
            <h1 class="display-3">Pitch with your voice.</h1>
            <p class="lead">Talk for a few minutes and get matched with the investors who actually get your startup.</p>
        </div>
    </section>

    <section class="py-5" id="how-it-works">
        <div class="container">
            <h2 class="text-center mb-5">How it works</h2>
            <div class="row">
                <div class="col-md-4 text-center step">
                    <span class="step-number">1</span>
                    <h3>Talk</h3>
                    <p>Answer a short voice interview about what you are building and what you value.</p>
                </div>
                <div class="col-md-4 text-center step">
                    <span class="step-number">2</span>
                    <h3>Match</h3>
                    <p>We listen for what matters and line you up with investors who think the same way.</p>
                </div>
                <div class="col-md-4 text-center step">
                    <span class="step-number">3</span>
                    <h3>Meet</h3>
                    <p>Skip the cold emails. Start the conversation already knowing you fit.</p>
                </div>
            </div>
        </div>
    </section>

    <section class="py-5 bg-light text-center" id="signup">
        <div class="container">
            <h2>Be first in line</h2>
            <p>Leave your email and we will tell you when your market opens up.</p>
            <form class="row justify-content-center g-2">
                <div class="col-auto">
                    <input type="email" class="form-control" name="email" placeholder="you@startup.com">
                </div>
                <div class="col-auto">
                    <button type="submit" class="btn btn-primary">Notify me</button>
                </div>
            </form>
        </div>
    </section>

    <footer class="py-4 bg-dark text-white text-center">
        <div class="container">
            <a class="footer-link" href="/privacy">Privacy</a>
            <a class="footer-link" href="/terms">Terms</a>
        </div>
    </footer>
</body>
</html>
`
