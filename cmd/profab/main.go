// Command profab computes protein feature tables from a fasta file using
// the POSSUM and iFeature toolkits.
//
// POSSUM descriptors need a PSSM matrix per protein; profab fetches missing
// matrices from a remote archive and regenerates the remainder locally with
// psiblast before invoking the toolkit.
//
// Usage:
//
//	profab extract --feature all_POSSUM --input-folder proteins --fasta-name sample
//	profab matrices --input-folder proteins --fasta-name sample
//	profab descriptors
//	profab check --input-folder proteins --fasta-name sample
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		closeLogFile()
		os.Exit(1)
	}
	closeLogFile()
}
