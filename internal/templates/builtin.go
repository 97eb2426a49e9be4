package templates

func fullstackNextJS() Template {
	const set = "fullstack-nextjs"
	return Template{
		Name:         set,
		Description:  "Full-stack Next.js application with TypeScript, Tailwind CSS, and Prisma",
		Category:     CategoryFullStack,
		Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "Prisma", "PostgreSQL"},
		Features:     []string{"Authentication", "Database integration", "API routes", "Responsive design"},
		Structure: Structure{
			Directories: []string{
				"src",
				"src/app",
				"src/components",
				"src/lib",
				"src/types",
				"prisma",
				"public",
			},
			Files: []ProjectFile{
				projectFile(set, "package.json", true),
				projectFile(set, "next.config.js", true),
				projectFile(set, "tailwind.config.js", true),
				projectFile(set, "tsconfig.json", true),
				projectFile(set, "README.md", true),
				projectFile(set, "src/app/page.tsx", true),
				projectFile(set, "prisma/schema.prisma", false),
			},
		},
		ConfigFiles: []ConfigFile{
			configFile(set, ".gitignore", "Git ignore rules"),
			configFile(set, ".env.example", "Example environment variables"),
		},
	}
}

func apiExpress() Template {
	const set = "api-express"
	return Template{
		Name:         set,
		Description:  "Express.js API with TypeScript, validation, and testing setup",
		Category:     CategoryBackend,
		Technologies: []string{"Express.js", "TypeScript", "Jest", "Zod"},
		Features:     []string{"REST API", "Input validation", "Error handling", "Testing setup"},
		Structure: Structure{
			Directories: []string{
				"src",
				"src/routes",
				"src/middleware",
				"src/types",
				"tests",
			},
			Files: []ProjectFile{
				projectFile(set, "package.json", true),
				projectFile(set, "tsconfig.json", true),
				projectFile(set, "README.md", true),
				projectFile(set, "src/index.ts", true),
			},
		},
		ConfigFiles: []ConfigFile{
			configFile(set, ".gitignore", "Git ignore rules"),
			configFile(set, ".env.example", "Example environment variables"),
		},
	}
}

func libraryTypeScript() Template {
	const set = "library-typescript"
	return Template{
		Name:         set,
		Description:  "TypeScript library with dual ESM/CJS builds and Vitest",
		Category:     CategoryLibrary,
		Technologies: []string{"TypeScript", "tsup", "Vitest"},
		Features:     []string{"Type declarations", "Dual module output", "Unit testing"},
		Structure: Structure{
			Directories: []string{
				"src",
				"tests",
			},
			Files: []ProjectFile{
				projectFile(set, "package.json", true),
				projectFile(set, "tsconfig.json", false),
				projectFile(set, "README.md", true),
				projectFile(set, "src/index.ts", true),
				projectFile(set, "LICENSE", true),
			},
		},
		ConfigFiles: []ConfigFile{
			configFile(set, ".gitignore", "Git ignore rules"),
		},
	}
}
