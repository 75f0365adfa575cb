package fortune

import (
	"github.com/sirupsen/logrus"

	"fortune-cloud/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
