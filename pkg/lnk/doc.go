// Package lnk decodes Windows shell link (".lnk") files.
//
// Decode is the pure entry point: it takes the file contents and returns a
// fully validated *types.Link or a typed error. Open adds file loading on
// top of it. Extract pulls one presentable field out of a decoded link.
//
// Example:
//
//	f, err := lnk.Open("app.lnk", nil)
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	target, ok := lnk.Extract(f.Link, lnk.FieldPathFile, nil)
//
// Errors can be classified with errors.Is against the sentinels in
// pkg/types (types.ErrTruncated, types.ErrHeaderMismatch,
// types.ErrOffsetOutOfRange, types.ErrMalformed, types.ErrIO).
package lnk
