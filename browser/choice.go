package browser

import (
	"fmt"
	"strings"
)

// Choice selects which browser is launched at startup.
type Choice int

const (
	Default Choice = iota
	Edge
	Brave
)

var choiceNames = map[Choice]string{
	Default: "default",
	Edge:    "edge",
	Brave:   "brave",
}

func (c Choice) String() string {
	if name, ok := choiceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// Set implements flag.Value.
func (c *Choice) Set(value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	for choice, name := range choiceNames {
		if name == v {
			*c = choice
			return nil
		}
	}
	return fmt.Errorf("unknown browser %q (want default, edge or brave)", value)
}
