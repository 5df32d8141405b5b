package xdfwriter

// UseStream adds a stream, starts it, and guarantees Close runs before
// returning — the scoped-acquisition counterpart to manually pairing
// AddStream/StartStream with a deferred Close.
func UseStream[F ValueType, T TimestampMode](w *Writer, info StreamInfo, fn func(*StreamWriter[F, T]) error) error {
	sb, err := AddStream[F, T](w, info)
	if err != nil {
		return err
	}

	sw, err := sb.StartStream()
	if err != nil {
		return err
	}
	defer sw.Close()

	return fn(sw)
}
