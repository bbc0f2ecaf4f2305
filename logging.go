package Array_View

import (
	"os"

	"github.com/sirupsen/logrus"
)

// init routes logrus output to stdout so consumers capture a single stream.
func init() {
	logrus.SetOutput(os.Stdout)
}
