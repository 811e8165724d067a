package desktop

import _ "embed"

//go:embed icon.png
var iconData []byte
