//go:build waypolicy_debug

package waypolicy

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
