package widgets

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chess10kp/strut/internal/draw"
)

// Battery shows the charge percentage read from sysfs, with a glyph for
// the charge level. It refreshes every time the bar measures it; hosts
// without a battery report a full charge.
type Battery struct {
	Text
	capacityPath string
}

// NewBattery reads /sys/class/power_supply/<name>; an empty name defaults
// to BAT0.
func NewBattery(name string, style Style) *Battery {
	if name == "" {
		name = "BAT0"
	}
	b := &Battery{
		capacityPath: "/sys/class/power_supply/" + name + "/capacity",
	}
	b.Text = newText(b.read(), style, false)
	return b
}

func (b *Battery) CurrentExtent(ctx draw.Context, h float64) (draw.Extent, error) {
	b.SetText(b.read())
	return b.Text.CurrentExtent(ctx, h)
}

func (b *Battery) read() string {
	percentage := 100
	if data, err := os.ReadFile(b.capacityPath); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			percentage = v
		}
	}

	charging := false
	statusPath := strings.Replace(b.capacityPath, "capacity", "status", 1)
	if data, err := os.ReadFile(statusPath); err == nil {
		charging = strings.TrimSpace(string(data)) == "Charging"
	}

	return fmt.Sprintf("%s %d%%", batteryIcon(percentage, charging), percentage)
}

func batteryIcon(percentage int, charging bool) string {
	if charging {
		return ""
	}
	switch {
	case percentage >= 75:
		return ""
	case percentage >= 50:
		return ""
	case percentage >= 25:
		return ""
	default:
		return ""
	}
}
