package xslog

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func ChildUID(uid string) slog.Attr {
	const childUIDKey = "child_uid"
	return slog.String(childUIDKey, uid)
}

func ChildName(name string) slog.Attr {
	const childNameKey = "child_name"
	return slog.String(childNameKey, name)
}

func Data(data string) slog.Attr {
	const dataKey = "data"
	return slog.String(dataKey, data)
}

func Type(t string) slog.Attr {
	const typeKey = "type"
	return slog.String(typeKey, t)
}

func Amount(amount int) slog.Attr {
	const amountKey = "amount"
	return slog.Int(amountKey, amount)
}

func RecordID(id string) slog.Attr {
	const recordIDKey = "record_id"
	return slog.String(recordIDKey, id)
}

func Start(t time.Time) slog.Attr {
	const startKey = "start"
	return slog.Time(startKey, t)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}
