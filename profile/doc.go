// Package profile adds CPU and heap profiling to CLI commands.
//
// Register the flags on a root command, start the [Profiler] before the
// command runs and stop it afterwards:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
//		return p.Start()
//	}
//	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
//		return p.Stop()
//	}
//
// Profiling a large batch of inputs is then a matter of passing
// --cpu-profile=cpu.prof or --heap-profile=heap.prof.
package profile
