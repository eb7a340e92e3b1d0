//go:build planar_debug

package planar

const debug = true
