// Package web bundles the browser chat widget into the server binary.
package web

import _ "embed"

//go:embed index.html
var Index []byte
