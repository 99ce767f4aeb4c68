package codec

import "errors"

// ErrRead is the sentinel wrapped by every error a Reader returns: a
// malformed or truncated buffer. Callers should branch with errors.Is
// rather than matching on the wrapped detail message.
var ErrRead = errors.New("codec: malformed input")

// ErrWrite is the sentinel wrapped by every error a Writer returns: the
// destination buffer cannot hold what is being written to it.
var ErrWrite = errors.New("codec: buffer overflow")
