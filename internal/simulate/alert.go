package simulate

// Token identifies one big-purchase alert generation.
type Token uint64

// Alert is the transient "simulate a large purchase" flag. Each Start
// supersedes any pending expiry, so only the latest generation can clear it.
// It never touches the accumulator.
type Alert struct {
	active bool
	gen    Token
}

// Start raises the flag and returns the token its expiry must present.
func (a *Alert) Start() Token {
	a.gen++
	a.active = true
	return a.gen
}

// Expire clears the flag if tok is the current generation. Stale tokens
// are ignored and report false.
func (a *Alert) Expire(tok Token) bool {
	if !a.active || tok != a.gen {
		return false
	}
	a.active = false
	return true
}

// Active reports whether the alert is showing.
func (a *Alert) Active() bool {
	return a.active
}
