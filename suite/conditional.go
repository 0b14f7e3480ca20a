package suite

// ConditionalTest registers name as a subtest. The activation decision is made here,
// at declaration time, as `Enabled() && extra()`; extra may be nil, meaning no
// additional condition. An inactive registration still declares the subtest and skips
// inside it, so disabled suites show up in reports as skipped, never as missing.
func (s *CloudSuite) ConditionalTest(name string, extra func() bool, body func()) {
	active := s.Enabled() && (extra == nil || extra())
	s.declared = append(s.declared, DeclaredTest{Name: name, Active: active})

	s.Run(name, func() {
		if !active {
			s.T().Skip("suite disabled or test condition not met")
		}
		s.logger().Infof("running %s (committer=%s)", name, s.conf.Committer())
		body()
	})
}

// DeclaredTests returns every ConditionalTest registration made by this suite
// instance, in declaration order, including the ones registered as skipped.
func (s *CloudSuite) DeclaredTests() []DeclaredTest {
	out := make([]DeclaredTest, len(s.declared))
	copy(out, s.declared)
	return out
}
