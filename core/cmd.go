package core

// Drain runs msg through step and feeds every follow-up message back in
// until step returns the zero value. It returns how many messages were applied.
//
// The zero value of M means "no message"; a fresh zero msg applies nothing.
func Drain[M comparable](msg M, step func(M) M) int {
	var none M
	n := 0
	for msg != none {
		msg = step(msg)
		n++
	}
	return n
}
