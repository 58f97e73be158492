package logger

import (
	"log"
	"os"
)

// New returns a logger writing to the given file, or to stdout when no
// path is given.
func New(path string) *log.Logger {
	if len(path) == 0 {
		return log.New(os.Stdout, "i8086 ", log.Ldate|log.Ltime|log.Lshortfile)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		log.Fatal(err)
	}
	l := log.New(f, "i8086 ", log.Ldate|log.Ltime|log.Lshortfile)
	l.Printf("Initializing %s", path)
	return l
}
