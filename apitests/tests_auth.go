package apitests

// DoLoginTest logs in with the configured credentials. Every other test depends on it.
func DoLoginTest(t *T) bool {
	email := t.env.params.Email
	return t.RunAlways("Login with "+email, func(t *T) {
		resp, ok := t.client().Login(email, t.env.params.Password)
		if !ok {
			t.failWithResponse(resp, "Login failed")
		}
		t.Detailf("User role: %s", t.Session().Role())
	})
}
