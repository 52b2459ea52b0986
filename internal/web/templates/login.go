package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
)

// LoginPage renders the sign-in form. Email is echoed back after a
// failed attempt; message carries the sign-in failure, if any.
func LoginPage(email, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Sign In | Acme Dashboard</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<main class="login">
<h1>Please log in to continue.</h1>
<form method="post" action=%q>
<label for="email">Email</label>
<input id="email" name="email" type="email" value=%q placeholder="Enter your email address" required>
<label for="password">Password</label>
<input id="password" name="password" type="password" placeholder="Enter password" required minlength="6">
`, routepath.Login, esc(email)); err != nil {
			return err
		}
		if message != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error" aria-live="polite">%s</p>
`, esc(message)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<button type="submit" class="button primary">Log in</button>
</form>
</main>
</body>
</html>
`)
		return err
	})
}
