package eligibility_service

import (
	"strings"
	"time"

	"github.com/BubsLB/airdropbreakdown/metrics"

	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger().WithField("module", "eligibility")

// CheckService resolves addresses for callers and paces lookup results
type CheckService struct {
	resolver *Resolver
	delay    time.Duration
	sleep    func(time.Duration)
}

// NewCheckService create check service. delay applies to lookup results only.
func NewCheckService(resolver *Resolver, delay time.Duration) *CheckService {
	if delay < 0 {
		delay = 0
	}
	return &CheckService{
		resolver: resolver,
		delay:    delay,
		sleep:    time.Sleep,
	}
}

// Schemes enabled address schemes
func (s *CheckService) Schemes() []Scheme {
	return s.resolver.Policy().Schemes
}

// Validate names of the schemes accepting the trimmed address
func (s *CheckService) Validate(raw string) []string {
	return s.resolver.Policy().Accepting(strings.TrimSpace(raw))
}

// Check resolve one address. Lookup results wait out the configured delay, rejections return at once.
func (s *CheckService) Check(raw string) Result {
	result := s.resolver.Resolve(raw)

	if result.IsLookup() && s.delay > 0 {
		s.sleep(s.delay)
	}

	metrics.RecordCheck(result.Scheme, string(result.Kind))
	logger.WithFields(logrus.Fields{
		"scheme": result.Scheme,
		"result": result.Kind,
	}).Debug("Eligibility check")
	return result
}
