package cloud

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Select returns the first detected plugin. Overlapping credentials resolve to the
// plugin listed first.
func Select(plugins []Plugin, logger logrus.FieldLogger) (Plugin, error) {
	for _, plugin := range plugins {
		if plugin.Detect() {
			logger.Infof("cloud '%s' detected", plugin.Name())

			return plugin, nil
		}

		logger.Debugf("cloud '%s' not detected", plugin.Name())
	}

	names := make([]string, 0, len(plugins))
	for _, plugin := range plugins {
		names = append(names, plugin.Name())
	}

	return nil, fmt.Errorf("%w: none of %v has all its required custom parameters", ErrNoBackendDetected, names)
}
