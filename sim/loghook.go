package sim

import (
	"log"
)

// LogHookBase provides the common logic for hooks that record simulation
// information through a logger.
type LogHookBase struct {
	*log.Logger
}
