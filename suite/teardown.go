package suite

// cleanupTestDir deletes everything in the suite's test directory. Strictly
// best-effort: listing failures, per-file delete failures, and panics out of the
// filesystem implementation are all logged and swallowed. A cleanup problem must
// never fail a test run that already passed.
func (s *CloudSuite) cleanupTestDir() {
	defer func() {
		if r := recover(); r != nil {
			s.logger().Infof("recovered from panic during test dir cleanup: %v", r)
		}
	}()

	if !s.CleanupOnTeardown || s.location == nil {
		return
	}

	dir, err := s.TestDir()
	if err != nil {
		s.logger().Infof("skipping test dir cleanup: %v", err)
		return
	}

	files, err := dir.List()
	if err != nil {
		s.logger().Infof("listing %s for cleanup: %v", dir.URI(), err)
		return
	}
	for _, file := range files {
		if err := dir.DeleteFile(file); err != nil {
			s.logger().Infof("deleting %s during cleanup: %v", file, err)
		}
	}
}
