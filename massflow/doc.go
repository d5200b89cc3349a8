// Package massflow sums solved flow quantities per process database.
//
// After the external solver fills a solve context's supply array, Total and
// ByIndex aggregate the supplied quantity over every activity of one process
// namespace, normalizing unit-embedded multipliers ("1000 kg" counts each
// supply unit as 1000). Both helpers are read-only over the solved context.
package massflow
