package desktop

import _ "embed"

//go:embed icon.ico
var iconData []byte
