/*
Package ports defines the driven ports (interfaces) for the kauffman engine.

These interfaces decouple the core network model from external
implementations. The engine produces a sequence of state vectors; what
happens to them — recording, streaming, rasterizing into an image — is the
host's business and lives behind FrameSink.
*/
package ports
