package cards

import "github.com/fffcards/fff/internal/source"

// loadedMsg is sent when a load attempt has finished, successfully or not.
type loadedMsg struct {
	Result source.Result
}
