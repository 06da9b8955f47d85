package i18n

const contactBlock = `

📞 Pokdarwis Desir: 0812-1000-2190
📧 Email: bidukbidukpokdarwis@gmail.com

`

var builtin = map[Lang]map[string]string{
	EN: {
		"site.title":   "Biduk-Biduk",
		"site.tagline": "Explore the beauty of Biduk-Biduk village",
		"nav.home":     "Home",
		"nav.places":   "Destinations",
		"nav.hotels":   "Hotels",
		"nav.packages": "Packages",
		"nav.articles": "Articles",

		"places.title":    "Destinations",
		"places.empty":    "No destinations available at the moment",
		"places.notFound": "Destination not found",
		"places.fee":      "Entrance fee",
		"places.hours":    "Operating hours",
		"places.contact":  "Contact",
		"places.map":      "Open in maps",

		"hotels.title":    "Hotels",
		"hotels.empty":    "No hotels available at the moment",
		"hotels.notFound": "Hotel not found",
		"hotels.book":     "Book now",
		"hotels.rating":   "%.1f (%d reviews)",

		"packages.title":    "Travel Packages",
		"packages.empty":    "No packages available at the moment",
		"packages.home":     "No packages available",
		"packages.notFound": "Package not found",
		"packages.included": "Destinations Included (%d)",
		"packages.noMap":    "Map not available",

		"articles.title":    "News & Articles",
		"articles.empty":    "No articles available at the moment",
		"articles.notFound": "Article not found",
		"articles.by":       "By %s",

		"gallery.empty": "No destination images available at the moment.",
		"image.none":    "No image available",

		"map.kicker": "Know Before You Go",
		"map.title":  "Explore Biduk-Biduk",
		"map.failed": "Failed to load map data",

		"pager.prev": "Previous",
		"pager.next": "Next",
		"pager.of":   "Page %d of %d",

		"chat.title":         "Travel Assistant",
		"chat.online":        "Online now",
		"chat.welcome":       "Hello! I'm your Biduk-Biduk travel assistant. How can I help you today?",
		"chat.contact":       "It looks like you need more detailed information. For direct assistance and up-to-date information, please contact:" + contactBlock + "Our local team will be happy to help you plan the perfect visit to Biduk-Biduk!",
		"chat.error":         "Sorry, I'm having trouble connecting right now. Please try again later or contact our support team.",
		"chat.errorShort":    "Sorry, I'm having trouble connecting right now. Please try again later.",
		"chat.noReply":       "Sorry, I couldn't process your request right now.",
		"chat.remaining":     "Remaining attempts: %d of %d",
		"chat.limit":         "⚠️ Maximum attempts reached. Next messages will be directed to direct contact.",
		"chat.quickTitle":    "Quick questions:",
		"chat.quick.1":       "Tell me about destinations",
		"chat.quick.2":       "Hotel recommendations",
		"chat.quick.3":       "Travel packages",
		"chat.quick.4":       "Local cuisine",
		"chat.clearTitle":    "Clear Conversation",
		"chat.clearQuestion": "Are you sure you want to clear this conversation? This action cannot be undone and all messages will be lost.",
		"chat.placeholder":   "Type your message...",
	},
	ID: {
		"site.title":   "Biduk-Biduk",
		"site.tagline": "Jelajahi keindahan desa Biduk-Biduk",
		"nav.home":     "Beranda",
		"nav.places":   "Destinasi",
		"nav.hotels":   "Hotel",
		"nav.packages": "Paket",
		"nav.articles": "Artikel",

		"places.title":    "Destinasi",
		"places.empty":    "Belum ada destinasi yang tersedia saat ini",
		"places.notFound": "Destinasi tidak ditemukan",
		"places.fee":      "Tiket masuk",
		"places.hours":    "Jam operasional",
		"places.contact":  "Kontak",
		"places.map":      "Buka di peta",

		"hotels.title":    "Hotel",
		"hotels.empty":    "Belum ada hotel yang tersedia saat ini",
		"hotels.notFound": "Hotel tidak ditemukan",
		"hotels.book":     "Pesan sekarang",
		"hotels.rating":   "%.1f (%d ulasan)",

		"packages.title":    "Paket Wisata",
		"packages.empty":    "Belum ada paket yang tersedia saat ini",
		"packages.home":     "Belum ada paket",
		"packages.notFound": "Paket tidak ditemukan",
		"packages.included": "Destinasi Termasuk (%d)",
		"packages.noMap":    "Peta tidak tersedia",

		"articles.title":    "Berita & Artikel",
		"articles.empty":    "Belum ada artikel yang tersedia saat ini",
		"articles.notFound": "Artikel tidak ditemukan",
		"articles.by":       "Oleh %s",

		"gallery.empty": "Belum ada gambar destinasi saat ini.",
		"image.none":    "Gambar tidak tersedia",

		"map.kicker": "Kenali Sebelum Berkunjung",
		"map.title":  "Jelajahi Biduk-Biduk",
		"map.failed": "Gagal memuat data peta",

		"pager.prev": "Sebelumnya",
		"pager.next": "Berikutnya",
		"pager.of":   "Halaman %d dari %d",

		"chat.title":         "Asisten Perjalanan",
		"chat.online":        "Sedang online",
		"chat.welcome":       "Halo! Saya asisten perjalanan Biduk-Biduk Anda. Ada yang bisa saya bantu hari ini?",
		"chat.contact":       "Sepertinya Anda membutuhkan informasi lebih detail. Untuk bantuan langsung dan informasi terkini, silakan hubungi:" + contactBlock + "Tim lokal kami akan dengan senang hati membantu Anda merencanakan kunjungan yang sempurna ke Biduk-Biduk!",
		"chat.error":         "Maaf, saya sedang mengalami gangguan koneksi. Silakan coba lagi nanti atau hubungi tim dukungan kami.",
		"chat.errorShort":    "Maaf, saya sedang mengalami gangguan koneksi. Silakan coba lagi nanti.",
		"chat.noReply":       "Maaf, saya belum dapat memproses permintaan Anda saat ini.",
		"chat.remaining":     "Sisa percobaan: %d dari %d",
		"chat.limit":         "⚠️ Batas percobaan tercapai. Pesan selanjutnya akan diarahkan ke kontak langsung.",
		"chat.quickTitle":    "Pertanyaan cepat:",
		"chat.quick.1":       "Ceritakan tentang destinasi",
		"chat.quick.2":       "Rekomendasi hotel",
		"chat.quick.3":       "Paket wisata",
		"chat.quick.4":       "Kuliner lokal",
		"chat.clearTitle":    "Hapus Percakapan",
		"chat.clearQuestion": "Apakah Anda yakin ingin menghapus percakapan ini? Tindakan ini tidak dapat dibatalkan dan semua pesan akan hilang.",
		"chat.placeholder":   "Ketik pesan Anda...",
	},
	AR: {
		"site.tagline": "اكتشف جمال قرية بيدوك-بيدوك",
		"nav.home":     "الرئيسية",
		"nav.places":   "الوجهات",
		"nav.hotels":   "الفنادق",
		"nav.packages": "الباقات",
		"nav.articles": "المقالات",

		"places.title":    "الوجهات",
		"places.empty":    "لا توجد وجهات متاحة حاليًا",
		"places.notFound": "الوجهة غير موجودة",
		"hotels.title":    "الفنادق",
		"hotels.empty":    "لا توجد فنادق متاحة حاليًا",
		"hotels.notFound": "الفندق غير موجود",
		"hotels.book":     "احجز الآن",
		"packages.title":  "الباقات السياحية",
		"packages.empty":  "لا توجد باقات متاحة حاليًا",
		"packages.home":   "لا توجد باقات",

		"packages.notFound": "الباقة غير موجودة",
		"articles.title":    "الأخبار والمقالات",
		"articles.empty":    "لا توجد مقالات متاحة حاليًا",
		"articles.notFound": "المقالة غير موجودة",
		"map.title":         "استكشف بيدوك-بيدوك",
		"map.failed":        "تعذر تحميل بيانات الخريطة",

		"chat.title":      "مساعد السفر",
		"chat.welcome":    "مرحبًا! أنا مساعدك للسفر إلى بيدوك-بيدوك. كيف يمكنني مساعدتك اليوم؟",
		"chat.contact":    "يبدو أنك تحتاج إلى معلومات أكثر تفصيلًا. للحصول على مساعدة مباشرة ومعلومات محدثة، يرجى التواصل مع:" + contactBlock + "سيسعد فريقنا المحلي بمساعدتك في التخطيط لزيارة مثالية إلى بيدوك-بيدوك!",
		"chat.error":      "عذرًا، أواجه مشكلة في الاتصال حاليًا. يرجى المحاولة لاحقًا أو التواصل مع فريق الدعم.",
		"chat.errorShort": "عذرًا، أواجه مشكلة في الاتصال حاليًا. يرجى المحاولة لاحقًا.",
		"chat.noReply":    "عذرًا، لم أتمكن من معالجة طلبك الآن.",
		"chat.remaining":  "المحاولات المتبقية: %d من %d",
		"chat.limit":      "⚠️ تم الوصول إلى الحد الأقصى للمحاولات. سيتم توجيه الرسائل التالية إلى التواصل المباشر.",
		"chat.quick.1":    "أخبرني عن الوجهات",
		"chat.quick.2":    "توصيات الفنادق",
		"chat.quick.3":    "الباقات السياحية",
		"chat.quick.4":    "المأكولات المحلية",
	},
	ZH: {
		"site.tagline": "探索比杜克-比杜克村的美景",
		"nav.home":     "首页",
		"nav.places":   "目的地",
		"nav.hotels":   "酒店",
		"nav.packages": "套餐",
		"nav.articles": "文章",

		"places.title":      "目的地",
		"places.empty":      "目前没有可用的目的地",
		"places.notFound":   "未找到目的地",
		"hotels.title":      "酒店",
		"hotels.empty":      "目前没有可用的酒店",
		"hotels.notFound":   "未找到酒店",
		"hotels.book":       "立即预订",
		"packages.title":    "旅游套餐",
		"packages.empty":    "目前没有可用的套餐",
		"packages.home":     "暂无套餐",
		"packages.notFound": "未找到套餐",
		"articles.title":    "新闻与文章",
		"articles.empty":    "目前没有可用的文章",
		"articles.notFound": "未找到文章",
		"map.title":         "探索比杜克-比杜克",
		"map.failed":        "地图数据加载失败",

		"chat.title":      "旅行助手",
		"chat.welcome":    "您好！我是您的比杜克-比杜克旅行助手。今天有什么可以帮您？",
		"chat.contact":    "看来您需要更详细的信息。如需直接帮助和最新信息，请联系：" + contactBlock + "我们的本地团队很乐意帮助您规划完美的比杜克-比杜克之旅！",
		"chat.error":      "抱歉，目前连接出现问题。请稍后再试或联系我们的支持团队。",
		"chat.errorShort": "抱歉，目前连接出现问题。请稍后再试。",
		"chat.noReply":    "抱歉，目前无法处理您的请求。",
		"chat.remaining":  "剩余次数：%d / %d",
		"chat.limit":      "⚠️ 已达到最大次数。后续消息将转为直接联系方式。",
		"chat.quick.1":    "介绍一下目的地",
		"chat.quick.2":    "酒店推荐",
		"chat.quick.3":    "旅游套餐",
		"chat.quick.4":    "当地美食",
	},
	FR: {
		"site.tagline": "Découvrez la beauté du village de Biduk-Biduk",
		"nav.home":     "Accueil",
		"nav.places":   "Destinations",
		"nav.hotels":   "Hôtels",
		"nav.packages": "Forfaits",
		"nav.articles": "Articles",

		"places.title":      "Destinations",
		"places.empty":      "Aucune destination disponible pour le moment",
		"places.notFound":   "Destination introuvable",
		"hotels.title":      "Hôtels",
		"hotels.empty":      "Aucun hôtel disponible pour le moment",
		"hotels.notFound":   "Hôtel introuvable",
		"hotels.book":       "Réserver",
		"packages.title":    "Forfaits de voyage",
		"packages.empty":    "Aucun forfait disponible pour le moment",
		"packages.home":     "Aucun forfait disponible",
		"packages.notFound": "Forfait introuvable",
		"articles.title":    "Actualités et articles",
		"articles.empty":    "Aucun article disponible pour le moment",
		"articles.notFound": "Article introuvable",
		"map.title":         "Explorer Biduk-Biduk",
		"map.failed":        "Impossible de charger les données de la carte",

		"chat.title":      "Assistant de voyage",
		"chat.welcome":    "Bonjour ! Je suis votre assistant de voyage pour Biduk-Biduk. Comment puis-je vous aider aujourd'hui ?",
		"chat.contact":    "Il semble que vous ayez besoin d'informations plus détaillées. Pour une aide directe et des informations à jour, veuillez contacter :" + contactBlock + "Notre équipe locale sera ravie de vous aider à préparer une visite parfaite à Biduk-Biduk !",
		"chat.error":      "Désolé, j'ai des difficultés de connexion en ce moment. Veuillez réessayer plus tard ou contacter notre équipe d'assistance.",
		"chat.errorShort": "Désolé, j'ai des difficultés de connexion en ce moment. Veuillez réessayer plus tard.",
		"chat.noReply":    "Désolé, je n'ai pas pu traiter votre demande pour le moment.",
		"chat.remaining":  "Tentatives restantes : %d sur %d",
		"chat.limit":      "⚠️ Nombre maximal de tentatives atteint. Les prochains messages seront redirigés vers un contact direct.",
		"chat.quick.1":    "Parlez-moi des destinations",
		"chat.quick.2":    "Recommandations d'hôtels",
		"chat.quick.3":    "Forfaits de voyage",
		"chat.quick.4":    "Cuisine locale",
	},
	ES: {
		"site.tagline": "Descubre la belleza del pueblo de Biduk-Biduk",
		"nav.home":     "Inicio",
		"nav.places":   "Destinos",
		"nav.hotels":   "Hoteles",
		"nav.packages": "Paquetes",
		"nav.articles": "Artículos",

		"places.title":      "Destinos",
		"places.empty":      "No hay destinos disponibles en este momento",
		"places.notFound":   "Destino no encontrado",
		"hotels.title":      "Hoteles",
		"hotels.empty":      "No hay hoteles disponibles en este momento",
		"hotels.notFound":   "Hotel no encontrado",
		"hotels.book":       "Reservar ahora",
		"packages.title":    "Paquetes de viaje",
		"packages.empty":    "No hay paquetes disponibles en este momento",
		"packages.home":     "No hay paquetes disponibles",
		"packages.notFound": "Paquete no encontrado",
		"articles.title":    "Noticias y artículos",
		"articles.empty":    "No hay artículos disponibles en este momento",
		"articles.notFound": "Artículo no encontrado",
		"map.title":         "Explora Biduk-Biduk",
		"map.failed":        "No se pudieron cargar los datos del mapa",

		"chat.title":      "Asistente de viaje",
		"chat.welcome":    "¡Hola! Soy tu asistente de viaje de Biduk-Biduk. ¿En qué puedo ayudarte hoy?",
		"chat.contact":    "Parece que necesitas información más detallada. Para asistencia directa e información actualizada, contacta con:" + contactBlock + "¡Nuestro equipo local estará encantado de ayudarte a planificar la visita perfecta a Biduk-Biduk!",
		"chat.error":      "Lo siento, tengo problemas de conexión en este momento. Inténtalo más tarde o contacta con nuestro equipo de soporte.",
		"chat.errorShort": "Lo siento, tengo problemas de conexión en este momento. Inténtalo más tarde.",
		"chat.noReply":    "Lo siento, no he podido procesar tu solicitud en este momento.",
		"chat.remaining":  "Intentos restantes: %d de %d",
		"chat.limit":      "⚠️ Se alcanzó el máximo de intentos. Los próximos mensajes se dirigirán al contacto directo.",
		"chat.quick.1":    "Háblame de los destinos",
		"chat.quick.2":    "Recomendaciones de hoteles",
		"chat.quick.3":    "Paquetes de viaje",
		"chat.quick.4":    "Gastronomía local",
	},
}
