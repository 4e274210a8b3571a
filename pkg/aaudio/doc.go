// Package aaudio bridges the generic audio layer onto the platform's
// low-latency native audio API and its managed device-information service.
//
// The Host enumerates devices through the managed service, degrading to a
// single unknown "default" device on platform versions that do not expose
// it. Devices report their supported configuration ranges by probing the
// platform's minimum-buffer-size function across candidate
// rate/channel/format triples, and resolve a default configuration with a
// heuristic ranking. Built streams run their data callbacks on a dedicated
// real-time thread owned by the native layer; the bridge translates buffers,
// timestamps and native error codes into the generic callback contract.
package aaudio
