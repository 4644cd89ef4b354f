// Package freq accumulates unit frequencies across files and turns them into
// deterministic reports: type/token statistics, frequency-ordered entries and
// byte-ordered listings. It also holds the marker inventory.
package freq
