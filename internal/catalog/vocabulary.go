package catalog

// skillVocabulary returns the raw surface forms the extractor matches,
// grouped by category. Matching is case-insensitive; canonical casing is
// applied afterwards by the normalizer.
func skillVocabulary() map[string][]string {
	return map[string][]string{
		"languages": {
			"python", "javascript", "js", "java", "c++", "c#", "c", "php", "ruby", "go", "swift",
			"kotlin", "typescript", "r", "scala", "rust", "dart", "perl", "haskell", "lua", "matlab",
		},
		"web_frontend": {
			"html", "html5", "css", "css3", "sass", "less", "bootstrap", "tailwind", "material ui",
			"react", "reactjs", "angular", "vue", "vue.js", "vuejs", "svelte", "next.js", "nextjs", "nuxt.js", "gatsby",
			"redux", "mobx", "graphql", "apollo", "webpack", "babel", "npm", "yarn", "vite", "parcel",
		},
		"web_backend": {
			"node", "node.js", "nodejs", "express", "nest.js", "nestjs", "django", "flask", "fastapi", "spring", "spring boot",
			"ruby on rails", "laravel", "asp.net", "asp.net core", ".net core", "play framework",
			"phoenix", "gin", "echo", "koa", "hapi", "sails.js", "loopback", "adonis.js", "slim",
			"fastify", "hono", "deno", "bun",
		},
		"mobile": {
			"react native", "flutter", "ios", "android", "swift", "kotlin", "objective-c", "xamarin",
			"ionic", "phonegap", "cordova", "capacitor", "kmm",
		},
		"databases": {
			"mysql", "postgresql", "postgres", "mongodb", "mongo", "redis", "oracle", "sql server",
			"ms sql", "ms sql server", "sqlite", "mariadb",
			"cassandra", "couchbase", "dynamodb", "firebase", "firestore", "realm", "neo4j", "arangodb",
			"couchdb", "rethinkdb", "influxdb", "timescaledb", "cockroachdb", "scylladb", "cosmosdb",
		},
		"devops": {
			"docker", "kubernetes", "helm", "terraform", "ansible", "puppet", "chef", "jenkins",
			"github actions", "gitlab ci", "circleci", "travis ci", "argo cd", "flux", "crossplane",
			"spinnaker", "tekton", "pulumi", "serverless", "aws cdk", "sst",
		},
		"cloud": {
			"aws", "amazon web services", "azure", "google cloud", "gcp", "digitalocean", "heroku",
			"vercel", "netlify", "cloudflare", "cloudflare workers", "cloudflare pages", "cloud run",
			"cloud functions", "lambda", "ec2", "s3", "rds", "dynamodb", "aurora", "sns", "sqs", "ses",
			"ecs", "eks", "fargate", "cloudfront", "route 53", "vpc", "iam", "cognito", "app sync",
			"app runner", "lightsail", "elastic beanstalk", "elasticache", "opensearch", "kinesis",
			"msk",
		},
		"data_science": {
			"pandas", "numpy", "scipy", "scikit-learn", "tensorflow", "pytorch", "keras", "opencv",
			"nltk", "spacy", "huggingface", "transformers", "datasets", "tokenizers", "ray", "dask",
			"pyspark", "apache spark", "hadoop", "hive", "hbase", "kafka", "flink", "beam", "airflow",
			"prefect", "dagster", "mlflow", "kubeflow", "sagemaker", "vertex ai", "h2o", "rapids",
		},
		"testing": {
			"jest", "mocha", "jasmine", "karma", "cypress", "playwright", "puppeteer", "selenium",
			"testcafe", "testing library", "react testing library", "enzyme", "vitest", "junit",
			"testng", "pytest", "unittest", "rspec", "cucumber", "jbehave", "serenity bdd", "mabl",
			"appium", "detox", "espresso", "xcuitest", "xctest",
		},
		"security": {
			"owasp", "jwt", "oauth", "openid connect", "saml", "ldap", "rbac", "abac", "pam", "tls",
			"ssl", "waf", "siem", "soc", "vpn", "vpc", "sg", "nacl", "iam", "pim", "pdp", "pep",
			"pip",
		},
	}
}

// skillAliases maps common lowercase variations to the canonical surface
// form looked up before title-casing kicks in.
func skillAliases() map[string]string {
	return map[string]string{
		"js":            "javascript",
		"reactjs":       "react",
		"vuejs":         "vue",
		"vue.js":        "vue",
		"nextjs":        "next.js",
		"nodejs":        "node.js",
		"nestjs":        "nest.js",
		"aws":           "amazon web services",
		"gcp":           "google cloud",
		"postgres":      "postgresql",
		"mongo":         "mongodb",
		"ms sql":        "sql server",
		"ms sql server": "sql server",
	}
}

// itSkillGroups backs the IT side of the profile skill picker.
func itSkillGroups() map[string][]string {
	return map[string][]string{
		"Programming Languages": {
			"Python", "JavaScript", "Java", "C++", "C#", "TypeScript",
			"PHP", "Ruby", "Go", "Swift", "Kotlin", "Rust", "Dart", "R",
		},
		"Web Development": {
			"HTML5", "CSS3", "React", "Angular", "Vue.js", "Node.js",
			"Django", "Flask", "Spring Boot", "Express", "Laravel", "ASP.NET",
			"Spring Framework", "Hibernate", "GraphQL", "Webpack", "SASS",
		},
		"Databases": {
			"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "SQL Server",
			"Redis", "Firebase", "DynamoDB", "Elasticsearch", "SQL",
		},
		"Cloud & DevOps": {
			"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes",
			"Terraform", "Jenkins", "GitHub Actions", "CI/CD", "Ansible",
		},
		"AI/ML & Data Science": {
			"Machine Learning", "Deep Learning", "Neural Networks", "Computer Vision",
			"NLP", "TensorFlow", "PyTorch", "Pandas", "NumPy", "Data Analysis",
			"Data Science", "MLOps", "Reinforcement Learning",
		},
		"Testing & Quality": {
			"Testing", "Automation Testing", "Selenium", "JUnit", "API Testing",
			"Performance Testing", "Bug Tracking",
		},
		"Mobile Development": {
			"Mobile Development", "Android SDK", "iOS", "Android", "React Native",
			"Flutter", "Jetpack Compose", "Room Database", "MVVM",
		},
		"Security & Compliance": {
			"Cybersecurity", "Network Security", "Penetration Testing", "SIEM",
			"Compliance", "Forensics", "Security",
		},
		"Enterprise & Architecture": {
			"Enterprise Applications", "System Design", "Design Patterns",
			"Architecture", "Cloud Architecture", "Scalability", "Performance",
			"Microservices",
		},
		"Specialized Technologies": {
			"Unity", "Unreal Engine", "3D Graphics", "Animation", "Physics",
			"Blockchain", "Solidity", "Smart Contracts", "Ethereum", "Web3",
			"DeFi", "NFT", "Cryptocurrency",
		},
		"Monitoring & Operations": {
			"Monitoring", "Prometheus", "Grafana", "Incident Management",
			"Scripting", "Automation", "Cloud Platforms",
		},
		"Java Ecosystem": {
			"Maven", "Spring Security", "Apache Kafka", "JPA",
		},
		"Other Technologies": {
			"Git", "Linux", "REST API", "GraphQL", "IoT", "Embedded Systems",
			"Mathematics", "Research", "Publications",
		},
	}
}

// nonITSkillGroups backs the Non-IT side of the profile skill picker.
func nonITSkillGroups() map[string][]string {
	return map[string][]string{
		"Business & Management": {
			"Project Management", "Product Management", "Agile", "Scrum",
			"Business Analysis", "Strategic Planning", "Risk Management",
		},
		"Communication": {
			"Public Speaking", "Technical Writing", "Documentation",
			"Presentation Skills", "Negotiation", "Team Leadership",
		},
		"Design & Creativity": {
			"UI/UX Design", "Graphic Design", "Figma", "Adobe XD",
			"Adobe Photoshop", "User Research", "Prototyping",
		},
		"Marketing & Sales": {
			"Digital Marketing", "Content Marketing", "SEO", "Social Media",
			"Email Marketing", "Copywriting", "Sales Strategy",
		},
		"Professional Skills": {
			"Problem Solving", "Critical Thinking", "Time Management",
			"Teamwork", "Adaptability", "Leadership", "Mentoring",
		},
	}
}
