package config

// DefaultMods is the built-in batch list used when no mods are
// configured. Entries are free-text names resolved through search, so
// display titles and slugs are both acceptable.
var DefaultMods = []string{
	"Advancement Plaques",
	"artifacts",
	"Auditory",
	"Better Advancements",
	"Better Mending",
	"Better Third Person",
	"BetterGrassify",
	"bosses-of-mass-destruction",
	"Bridging Mod",
	"Camera Overhaul",
	"Cloth Config API",
	"Cobweb",
	"Comforts",
	"Connectable Chains",
	"Cristal Lib",
	"ct-overhaul-village",
	"Data Loader",
	"Diagonal Fences",
	"Diagonal Walls",
	"Diagonal Windows",
	"Dungeons and Taverns",
	"Easy Elytra Takeoff",
	"Eating Animations",
	"Entity Model Features",
	"Entity Texture Features",
	"explorify",
	"FallingTree",
	"Farmers Delight Refabricated",
	"First Person Model",
	"friends-and-foes",
	"Horse Buff",
	"Iceberg",
	"immersivethunder",
	"Incendium",
	"Invmove",
	"Jamlib",
	"kiwi",
	"Legendary Tooltips",
	"mes-moogs-end-structures",
	"moogs-voyager-structures",
	"More Mob Varients",
	"M.R.U",
	"Not Enough Animation",
	"Nullscape",
	"owo-lib",
	"Particular",
	"philips-ruins",
	"plasmo-voice",
	"Prism",
	"Reforged",
	"RightClickHarvest",
	"Scalablelux",
	"snow-real-magic",
	"Sounds",
	"soul-fire",
	"sparsestructures",
	"Spell Power",
	"Structory",
	"SuperBetterGrass",
	"Tectonic",
	"Towns and Towers",
	"Trade Cycling",
	"trinkets",
	"UNionLib",
	"libraryferret",
	"pehkui",
	"fabric-language-kotlin",
	"resourceful-config",
	"geckolib",
	"knight-lib",
	"moreculling",
	"alloy-forgery",
	"azurelib-armor",
	"sushi-bar",
	"origins",
	"extra-rpg-attributes",
	"azurelib",
	"more-spell-attributes-more-magic-series",
	"lithostitched",
	"Vanilla Refresh",
	"villager-names-serilum",
	"resourceful-lib",
	"Visuality",
	"waystones",
	"when-dungeons-arise",
	"yungs-better-caves",
	"yungs-better-desert-temples",
	"yungs-better-dungeons",
	"yungs-better-end-island",
	"yungs-better-jungle-temples",
	"yungs-better-mineshafts",
	"yungs-better-nether-fortresses",
	"yungs-better-ocean-monuments",
	"yungs-better-strongholds",
	"yungs-better-structures",
	"yungs-better-villages",
	"yungs-better-witch-huts",
	"yungs-bridges",
	"yungs-extras",
	"amendments",
	"archers",
	"balm-fabric",
	"bookshelf",
	"gazebo",
	"jewelry",
	"iris",
	"indium",
	"lithium",
	"sodium",
	"sodium-extra",
	"modernfix",
	"reeses-sodium-options",
	"niftycarts",
	"noisium",
	"noxesium",
	"paladins",
	"smartfarmers",
	"spell-engine",
	"supplementaries",
	"thepa-structures",
	"cardinal-components",
	"player-animator",
	"moonlight-lib",
	"carryon",
	"camerapture",
	"ketkets-furnicraft",
	"immersive-aircraft",
	"village-taverns",
	"rogues",
	"wizards",
	"runes",
	"elytratrims",
	"wi-zoom",
	"forge-config-api-port",
	"collective",
	"better-villages",
	"puzzleslib",
	"yungs-api",
	"clumps",
	"iron-chests",
	"better-nether-map",
	"mythicmetals",
	"modern-industrialization",
	"create-fabric",
	"summoning-rituals",
	"just-give",
	"item-filters",
	"jade",
	"cull-leaves",
	"adaptive-tooltips",
	"arcanus",
	"trading-post",
	"campsite",
	"playerex",
	"mythic-upgrades",
	"occultism",
	"knight-quest",
	"mythic-mounts",
	"epic-knights",
	"umu-backpack",
	"bewitchment",
	"better-combat",
	"spellblade-next",
	"affinity",
	"tool-leveling",
	"fwaystones",
	"useless-reptile",
	"elytra-slot",
	"architectury",
	"l2weaponry",
	"l2complements",
	"mc-dungeons-weapons",
}
