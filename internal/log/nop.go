package log

type nopLogger struct{}

func (*nopLogger) Errorf(format string, args ...any) {}

func (*nopLogger) Error(args ...any) {}

func (*nopLogger) Warnf(format string, args ...any) {}

func (*nopLogger) Warn(args ...any) {}

func (*nopLogger) Infof(format string, args ...any) {}

func (*nopLogger) Info(args ...any) {}

func (*nopLogger) Debugf(format string, args ...any) {}

func (*nopLogger) Debug(args ...any) {}
