/*
symbol-upload is a command-line tool that is intended to be run in a CI
environment after a mobile app is built. It takes the build's debug-symbol
archive (an iOS dSYM zip or an Android mapping file) and sends it to the
Crittercism backend, where it is used to symbolicate crash stack traces in
the user interface.

The upload is a fixed three-step exchange. The tool first asks the files API
for an upload slot, which returns an opaque resource identifier and a storage
key. It then fills the slot with the archive bytes, addressed by the storage
key. Finally it registers a symbol-processing job with the application API,
naming the resource identifier and the archive's base filename, so the
backend can associate the symbols with incoming crash reports.

Any failure along the way is fatal: the tool never retries, and server-side
state created by earlier steps is left for the backend to reap.
*/
package main
