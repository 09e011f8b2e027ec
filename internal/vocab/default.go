package vocab

// Default returns the built-in vocabulary that ships with fauxlog.
func Default() *Table {
	t, err := New(map[Category][]string{
		Services: {
			"auth-gateway", "iam-core", "token-validator", "policy-engine",
			"kubelet", "etcd-watch", "control-plane", "sidecar-proxy",
			"otel-collector", "prom-scraper", "alert-dispatcher", "chaos-agent",
			"vector-agent", "fluent-bit", "filebeat", "metricd", "trivy-scanner",
			"vault-agent", "keycloak-sync", "oidc-broker", "sso-bridge",
			"redis-connector", "kafka-producer", "pulsar-client", "nats-jetstream",
			"temporal-worker", "dapr-sidecar", "linkerd-proxy", "istio-citadel",
		},
		Hosts: {
			"node-07a", "k8s-worker-42", "ip-172-31-94-112", "ec2-i-0f8d3e2a1b9c4d5e",
			"rke2-master-3", "aks-agentpool-12457890-vmss00000p", "pod-ip-10-244-3-189",
			"gke-g1-small-xyz-789f", "minikube", "kind-control-plane", "talos-ctrl-01",
		},
		Actions: {
			"processing", "validating", "rejecting", "authorizing", "refreshing",
			"syncing", "reconciling", "evicting", "terminating", "scaling",
			"restarting", "rolling", "draining", "cordon", "uncordon",
			"retrying", "failing", "timeout", "ratelimiting", "throttling",
		},
		Objects: {
			"JWT", "access-token", "refresh-token", "OIDC-id-token", "SAML-assertion",
			"pod", "deployment", "statefulset", "daemonset", "node", "namespace",
			"secret", "configmap", "ingress", "service", "pvc", "pv",
		},
		Suffixes: {
			"succeeded", "failed", "timed-out", "denied", "accepted", "completed",
			"dropped", "queued", "dequeued", "retried (3)", "status=200", "status=429",
			"http/2", "grpc-code=UNAVAILABLE", "principal=system:serviceaccount:prod:api-rw",
		},
		ErrorPatterns: {
			"connection refused", "TLS handshake timeout", "certificate expired",
			"invalid signature", "audience mismatch", "rate limit exceeded",
			"circuit breaker open", "upstream timeout", "out of memory",
			"etcdserver: request timed out",
		},
		Annotations:  {"stack trace truncated", "cause=timeout", "details redacted"},
		Phases:       {"Pending", "Running", "Terminating", "CrashLoopBackOff"},
		Methods:      {"GET", "POST", "PUT", "DELETE"},
		Paths:        {"tokens", "sessions", "keys", "audit", "metrics"},
		ClientPrefix: {"10.42.", "172.31.", "192.168."},
		FragmentTags: {"OK", "FAIL", "WARN", "SKIP", "PASS", "PENDING"},
		TaskAdverbs: {
			"quietly", "recursively", "aggressively", "speculatively", "gently",
			"forcibly", "lazily", "asynchronously", "optimistically", "reluctantly",
		},
		TaskVerbs: {
			"entangling", "collapsing", "calibrating", "synchronizing", "decrypting",
			"re-aligning", "simulating", "harvesting", "warming up", "folding",
			"initializing", "purging", "compressing", "overclocking", "refactoring",
			"uploading", "tuning", "stabilizing",
		},
		TaskObjects: {
			"quantum key distribution nodes", "the waveform of a shadow partition",
			"tachyonic flux capacitor", "chroniton field harmonics",
			"zero-point energy signature", "brane-world membrane tension",
			"11-dimensional firewall lattice", "dark-pool telemetry entropy",
			"neutrino-cooled hash oracle", "protein chains",
			"recursive singularity bootstrap", "temporal echo artifacts",
			"Planck-scale metadata", "imaginary unit cache",
			"blockchain of consciousness", "soul fragment checksums",
			"hyperspace routing tables", "exotic matter containment",
		},
		TaskSuffixes: {
			"in subspace", "across all shards", "behind the event horizon",
			"on the secondary timeline", "via the side channel",
		},
		TaskQualifier: {
			"(attempt 2 of 3)", "with extreme prejudice", "under observation",
			"(best effort)", "for legal reasons",
		},
		FillGlyphs: {
			"█", "▓", "▒", "░", "▉", "▊", "▋", "▌", "▍", "▎", "▏",
			"⬜", "■", "▣", "▤", "▥", "▦", "▧", "▨", "▩", "⬛",
		},
		EmptyGlyphs: {"·", "-", "░", "⋅"},
	})
	if err == nil {
		err = t.Require(Categories...)
	}
	if err != nil {
		panic(err)
	}
	return t
}
