package logger

import "log/slog"

// Error returns a standard attribute for error values.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Component tags a record with the subsystem that emitted it.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// UserID tags a record with the acting staff account.
func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

// CustomerID tags a record with the acting portal customer.
func CustomerID(id int64) slog.Attr {
	return slog.Int64("customer_id", id)
}
