package content

// Default returns the built-in Web3 development guide. Each call builds a
// fresh value so callers never share slices.
func Default() Page {
	return Page{
		Title:       "Web3 Development Guide",
		Description: "A comprehensive guide for Web3 development",
		Brand:       "CampBuidl",
		Hero: Hero{
			Title:   "Welcome to Web3 Development",
			Tagline: "Your comprehensive guide to building decentralized applications. Start your journey into the future of the web.",
		},
		Nav: []NavLink{
			{Label: "Simple Storage", Target: "/examples/simple-storage"},
			{Label: "ERC20", Target: "/examples/erc20"},
			{Label: "NFT", Target: "/examples/nft"},
		},
		Lessons: []Lesson{
			{
				ID:          1,
				Title:       "React Fundamentals",
				Topic:       "React Components",
				Description: "Master the fundamentals of React",
				Theme:       Blue,
				Icon:        "⚛️",
				Outline: []OutlineItem{
					{Label: "Components:", Text: "Reusable UI pieces that manage their own content, presentation, and behavior. Learn about functional components, class components, and when to use each."},
					{Label: "State Management:", Children: []OutlineItem{
						{Text: "useState for local state"},
						{Text: "useReducer for complex state logic"},
						{Text: "Context API for global state"},
						{Text: "Redux/Zustand for large applications"},
					}},
					{Label: "Lifecycle and Effects:", Text: "Understanding useEffect and component lifecycle for data fetching and subscriptions"},
				},
				Links: []LinkRef{
					{Label: "Official React Documentation", URL: "https://react.dev", External: true},
					{Label: "React Learning Path", URL: "https://beta.reactjs.org/learn", External: true},
				},
				Code: &CodeSample{
					Language: LangJSX,
					Body: `// Modern React Hook Pattern
const [count, setCount] = useState(0);
const increment = () => setCount(prev => prev + 1);

// Using useEffect for side effects
useEffect(() => {
  // Subscription or data fetching logic
  return () => {
    // Cleanup function
  };
}, [dependencies]);`,
				},
			},
			{
				ID:          2,
				Title:       "JavaScript Libraries",
				Description: "Essential tools for Web3 development",
				Theme:       Purple,
				Icon:        "📦",
				Outline: []OutlineItem{
					{Label: "package.json:", Text: "Your project's configuration file"},
					{Label: "dependencies:", Text: "External libraries your project needs"},
					{Label: "npm commands:", Text: "install, update, remove packages"},
				},
				LinksHeading: "Essential Tools",
				LinkLayout:   LayoutGrid,
				Links: []LinkRef{
					{Label: "Node.js Download", URL: "https://nodejs.org", External: true},
					{Label: "NPM Documentation", URL: "https://docs.npmjs.com", External: true},
				},
				Code: &CodeSample{
					Language: LangBash,
					Body: `npm install @rainbow-me/rainbowkit wagmi viem
// This installs Web3 libraries`,
				},
			},
			{
				ID:          3,
				Title:       "Web3 Wallets",
				Topic:       "RainbowKit & Wallets",
				Description: "Connect with blockchain wallets",
				Theme:       Green,
				Icon:        "🌈",
				Outline: []OutlineItem{
					{Label: "RainbowKit:", Text: "Wallet connection interface"},
					{Label: "MetaMask:", Text: "Popular Ethereum wallet"},
					{Label: "WalletConnect:", Text: "Protocol for connecting wallets"},
				},
				Links: []LinkRef{
					{Label: "RainbowKit Documentation", URL: "https://rainbowkit.com", External: true},
					{Label: "MetaMask Download", URL: "https://metamask.io", External: true},
				},
				Code: &CodeSample{
					Language: LangTSX,
					Body: `<ConnectButton />
// This button handles wallet connections`,
				},
			},
			{
				ID:          4,
				Title:       "Smart Contracts",
				Description: "Build blockchain integrations",
				Theme:       Orange,
				Icon:        "📝",
				Outline: []OutlineItem{
					{Label: "Contract ABIs:", Children: []OutlineItem{
						{Text: "Understanding ABI structure and generation"},
						{Text: "Type safety with TypeChain"},
						{Text: "Managing multiple contract versions"},
					}},
					{Label: "Interaction Patterns:", Children: []OutlineItem{
						{Text: "Read operations (view/pure functions)"},
						{Text: "Write operations (transactions)"},
						{Text: "Event listening and websocket connections"},
						{Text: "Gas optimization strategies"},
					}},
					{Label: "Error Handling:", Children: []OutlineItem{
						{Text: "Transaction failures and reversions"},
						{Text: "Network issues and retry strategies"},
						{Text: "User feedback patterns"},
					}},
				},
				LinksHeading: "Essential Tools",
				LinkLayout:   LayoutGrid,
				Links: []LinkRef{
					{Label: "Wagmi Documentation", URL: "https://wagmi.sh", External: true},
					{Label: "Viem Documentation", URL: "https://viem.sh", External: true},
					{Label: "Ethers.js Documentation", URL: "https://docs.ethers.org", External: true},
					{Label: "Hardhat Documentation", URL: "https://hardhat.org", External: true},
				},
				Code: &CodeSample{
					Language: LangTypeScript,
					Body: `// Contract interaction example
const { data } = useContractRead({
  address: '0x...',
  abi: contractABI,
  functionName: 'balanceOf'
});`,
				},
			},
		},
		FooterNote: "Built with ❤️ for Web3 Development Learning",
		FooterLinks: []LinkRef{
			{Label: "Documentation", URL: "/docs"},
			{Label: "GitHub", URL: "https://github.com", External: true},
		},
	}
}
